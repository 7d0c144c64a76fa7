package rest

import (
	"booking-refund-service/internal/controller/rest/handlers"
	"booking-refund-service/pkg/health"
	"booking-refund-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	refund         handlers.RefundHandler
	availability   handlers.AvailabilityHandler
	healthRegistry *health.Registry
}

func (r *Router) SetUp(engine *gin.Engine) {
	// Health checks (Kubernetes-style)
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	// Prometheus metrics
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// Gateway callback. In kafka mode the handler enqueues instead of applying.
	engine.POST("/webhooks/payments/refunds", r.refund.Webhook)

	engine.GET("/refunds", r.refund.Filter)
	engine.GET("/refunds/eligibility", r.refund.CheckEligibility)
	engine.GET("/refunds/stats", r.refund.Stats)
	engine.POST("/refunds", r.refund.Create)
	engine.GET("/refunds/:refund_id", r.refund.Get)
	engine.POST("/refunds/:refund_id/submit", r.refund.Submit)
	engine.POST("/refunds/:refund_id/cancel", r.refund.Cancel)

	engine.GET("/rooms/available", r.availability.AvailableRooms)
	engine.GET("/rooms/:room_id/availability", r.availability.Check)
	engine.GET("/rooms/:room_id/blocked-dates", r.availability.ListBlockedDates)
	engine.POST("/blocked-dates", r.availability.CreateBlockedDate)
	engine.POST("/blocked-dates/bulk", r.availability.BulkBlock)
	engine.DELETE("/blocked-dates/:blocked_date_id", r.availability.RemoveBlockedDate)
}

func NewRouter(
	refund handlers.RefundHandler,
	availability handlers.AvailabilityHandler,
	healthRegistry *health.Registry,
) *Router {
	return &Router{
		refund:         refund,
		availability:   availability,
		healthRegistry: healthRegistry,
	}
}
