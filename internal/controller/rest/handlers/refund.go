package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"booking-refund-service/internal/controller/apperror"
	"booking-refund-service/internal/domain/ledger"
	"booking-refund-service/internal/domain/refund"
	"booking-refund-service/internal/webhook"
)

type RefundHandler struct {
	service   *refund.RefundService
	processor webhook.Processor
}

func NewRefundHandler(s *refund.RefundService, processor webhook.Processor) RefundHandler {
	return RefundHandler{service: s, processor: processor}
}

type eligibilityParams struct {
	ResourceKind string `form:"resource_kind" binding:"required"`
	ResourceID   string `form:"resource_id" binding:"required"`
	RequestedBy  string `form:"requested_by" binding:"required,uuid"`
}

func (h *RefundHandler) CheckEligibility(c *gin.Context) {
	var params eligibilityParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, err := ledger.NewResourceKind(params.ResourceKind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.CheckEligibility(c.Request.Context(), kind, params.ResourceID, uuid.MustParse(params.RequestedBy))
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

type createRefundBody struct {
	ResourceKind string   `json:"resource_kind" binding:"required"`
	ResourceID   string   `json:"resource_id" binding:"required"`
	RequestedBy  string   `json:"requested_by" binding:"required,uuid"`
	Amount       *float64 `json:"amount" binding:"omitempty,gte=0"`
	Reason       string   `json:"reason" binding:"required"`
	Notes        *string  `json:"notes"`
}

// Create runs the eligibility gates and inserts the pending refund request.
// A missing amount means a full refund of the paid total.
func (h *RefundHandler) Create(c *gin.Context) {
	var body createRefundBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, err := ledger.NewResourceKind(body.ResourceKind)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reason, err := refund.NewReason(body.Reason)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	requestedBy := uuid.MustParse(body.RequestedBy)

	ctx := c.Request.Context()
	eligibility, err := h.service.CheckEligibility(ctx, kind, body.ResourceID, requestedBy)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	if !eligibility.Eligible {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  refund.ErrNotEligible.Error(),
			"reason": eligibility.Reason,
		})
		return
	}

	amount := eligibility.Amount
	if body.Amount != nil {
		amount = *body.Amount
	}

	created, err := h.service.Create(ctx, refund.CreateRequest{
		ResourceKind:      kind,
		ResourceID:        body.ResourceID,
		PaymentID:         eligibility.PaymentID,
		RequestedBy:       requestedBy,
		Amount:            amount,
		OriginalAmount:    eligibility.Amount,
		Reason:            reason,
		Notes:             body.Notes,
		ExternalPaymentID: eligibility.ExternalPaymentID,
	})
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *RefundHandler) Get(c *gin.Context) {
	refundID := c.Param("refund_id")
	if refundID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing refund_id"})
		return
	}

	res, err := h.service.GetRefundByID(c.Request.Context(), refundID)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

type filterParams struct {
	ResourceKind string `form:"resource_kind"`
	ResourceID   string `form:"resource_id"`
	RequestedBy  string `form:"requested_by" binding:"omitempty,uuid"`
	Statuses     string `form:"status"`
	PageSize     int    `form:"limit" binding:"omitempty,min=1"`
	PageNumber   int    `form:"page" binding:"omitempty,min=1"`
	SortBy       string `form:"sort_by" binding:"omitempty,oneof=requested_at updated_at"`
	SortOrder    string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

func (h *RefundHandler) Filter(c *gin.Context) {
	query, err := h.createFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.service.GetRefunds(c.Request.Context(), *query)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *RefundHandler) createFilter(c *gin.Context) (*refund.RefundsQuery, error) {
	var params filterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	builder := refund.NewRefundsQueryBuilder()

	if params.ResourceKind != "" {
		kind, err := ledger.NewResourceKind(params.ResourceKind)
		if err != nil {
			return nil, err
		}
		if params.ResourceID != "" {
			builder.WithResource(kind, params.ResourceID)
		} else {
			builder.WithResource(kind)
		}
	}
	if params.RequestedBy != "" {
		builder.WithRequestedBy(params.RequestedBy)
	}
	if params.Statuses != "" {
		raw := strings.Split(params.Statuses, ",")
		statuses := make([]refund.Status, len(raw))
		for i, v := range raw {
			s, err := refund.NewStatus(v)
			if err != nil {
				return nil, err
			}
			statuses[i] = s
		}
		builder.WithStatuses(statuses...)
	}

	if params.PageSize == 0 {
		params.PageSize = 10
	}
	if params.PageNumber == 0 {
		params.PageNumber = 1
	}
	if params.SortBy == "" {
		params.SortBy = "requested_at"
	}
	if params.SortOrder == "" {
		params.SortOrder = "desc"
	}

	return builder.
		WithSort(params.SortBy, params.SortOrder).
		WithPagination(refund.Pagination{PageSize: params.PageSize, PageNumber: params.PageNumber}).
		Build()
}

func (h *RefundHandler) Submit(c *gin.Context) {
	refundID := c.Param("refund_id")
	if refundID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing refund_id"})
		return
	}

	res, err := h.service.SubmitToGateway(c.Request.Context(), refundID)
	if err != nil {
		if res.Status == refund.StatusFailed {
			// Submission was rejected by the gateway; the recorded failure
			// is retryable, so return the updated refund with the error.
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "refund": res})
			return
		}
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

type cancelBody struct {
	RequestedBy string `json:"requested_by" binding:"required,uuid"`
}

func (h *RefundHandler) Cancel(c *gin.Context) {
	refundID := c.Param("refund_id")
	if refundID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing refund_id"})
		return
	}

	var body cancelBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.service.Cancel(c.Request.Context(), refundID, uuid.MustParse(body.RequestedBy))
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

type statsParams struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}

func (h *RefundHandler) Stats(c *gin.Context) {
	var params statsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if params.To.IsZero() {
		params.To = time.Now().UTC()
	}
	if params.From.IsZero() {
		params.From = params.To.AddDate(0, -1, 0)
	}

	res, err := h.service.GetStats(c.Request.Context(), params.From, params.To)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

// Webhook receives the gateway's refund result callback. In kafka mode the
// processor only enqueues the payload; the consumer applies it.
func (h *RefundHandler) Webhook(c *gin.Context) {
	if h.processor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "webhook endpoint not available in this mode"})
		return
	}

	var event webhook.GatewayResultWebhook
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.processor.ProcessGatewayResult(c.Request.Context(), event); err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusAccepted)
}
