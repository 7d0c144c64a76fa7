package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booking-refund-service/internal/controller/apperror"
	"booking-refund-service/internal/domain/availability"
)

type AvailabilityHandler struct {
	service *availability.AvailabilityService
}

func NewAvailabilityHandler(s *availability.AvailabilityService) AvailabilityHandler {
	return AvailabilityHandler{service: s}
}

type checkParams struct {
	StartDate time.Time `form:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate   time.Time `form:"end_date" binding:"required" time_format:"2006-01-02"`
}

func (h *AvailabilityHandler) Check(c *gin.Context) {
	roomID := c.Param("room_id")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_id"})
		return
	}

	var params checkParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := availability.NewDateRange(params.StartDate, params.EndDate)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	res, err := h.service.CheckRoomAvailability(c.Request.Context(), roomID, r)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

type availableRoomsParams struct {
	BusinessID string    `form:"business_id" binding:"required,uuid"`
	StartDate  time.Time `form:"start_date" binding:"required" time_format:"2006-01-02"`
	EndDate    time.Time `form:"end_date" binding:"required" time_format:"2006-01-02"`
}

func (h *AvailabilityHandler) AvailableRooms(c *gin.Context) {
	var params availableRoomsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rooms, err := h.service.ComputeAvailableRooms(c.Request.Context(),
		uuid.MustParse(params.BusinessID), params.StartDate, params.EndDate)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"room_ids": rooms})
}

// Blocked-date bodies carry dates as plain "2006-01-02" strings, the
// format the calendar UI sends. Gin's time_format tag only applies to
// form binding, so JSON dates are parsed by hand.
type blockDateBody struct {
	RoomID     string  `json:"room_id" binding:"required"`
	BusinessID string  `json:"business_id" binding:"required,uuid"`
	StartDate  string  `json:"start_date" binding:"required"`
	EndDate    string  `json:"end_date" binding:"required"`
	Reason     string  `json:"reason" binding:"required"`
	Notes      *string `json:"notes"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func (h *AvailabilityHandler) CreateBlockedDate(c *gin.Context) {
	var body blockDateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := parseDate(body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := parseDate(body.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reason, err := availability.NewBlockReason(body.Reason)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blocked, err := h.service.CreateBlockedDate(c.Request.Context(), availability.NewBlockedDate{
		RoomID:     body.RoomID,
		BusinessID: uuid.MustParse(body.BusinessID),
		StartDate:  start,
		EndDate:    end,
		Reason:     reason,
		Notes:      body.Notes,
	})
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, blocked)
}

type bulkBlockBody struct {
	BusinessID string   `json:"business_id" binding:"required,uuid"`
	RoomIDs    []string `json:"room_ids" binding:"required,min=1"`
	StartDate  string   `json:"start_date" binding:"required"`
	EndDate    string   `json:"end_date" binding:"required"`
	Reason     string   `json:"reason" binding:"required"`
	Notes      *string  `json:"notes"`
}

// BulkBlock blocks the same window on many rooms. Always 200: per-room
// conflicts are reported in the body, not as a request failure.
func (h *AvailabilityHandler) BulkBlock(c *gin.Context) {
	var body bulkBlockBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := parseDate(body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	end, err := parseDate(body.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reason, err := availability.NewBlockReason(body.Reason)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.BulkBlockDates(c.Request.Context(),
		uuid.MustParse(body.BusinessID), body.RoomIDs, start, end, reason, body.Notes)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AvailabilityHandler) ListBlockedDates(c *gin.Context) {
	roomID := c.Param("room_id")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_id"})
		return
	}

	blocked, err := h.service.ListBlockedDates(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, blocked)
}

func (h *AvailabilityHandler) RemoveBlockedDate(c *gin.Context) {
	blockedID := c.Param("blocked_date_id")
	if blockedID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing blocked_date_id"})
		return
	}

	if err := h.service.RemoveBlockedDate(c.Request.Context(), blockedID); err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
