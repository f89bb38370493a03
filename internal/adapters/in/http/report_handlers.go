package http

import (
	"net/http"
	"time"

	"canteen/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetRevenueReport handles GET /api/v1/reports/revenue - takings since
// ?since= (RFC 3339, all time when absent) and the ?top= best sellers. Staff only.
func (s *Server) GetRevenueReport(ctx echo.Context, params GetRevenueReportParams) error {
	if _, err := requireStaff(ctx); err != nil {
		return s.writeError(ctx, err, "")
	}

	var since time.Time
	if params.Since != nil {
		since = *params.Since
	}

	query, err := queries.NewGetRevenueReportQuery(since, intOr(params.Top, 0))
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	report, err := s.h.RevenueReport.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to build revenue report")
	}

	return ctx.JSON(http.StatusOK, toRevenueReport(report))
}

// GetFeedbacks handles GET /api/v1/feedback - newest first, ?limit= entries. Staff only.
func (s *Server) GetFeedbacks(ctx echo.Context, params GetFeedbacksParams) error {
	if _, err := requireStaff(ctx); err != nil {
		return s.writeError(ctx, err, "")
	}

	query, err := queries.NewGetFeedbacksQuery(intOr(params.Limit, 0))
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	feedbacks, err := s.h.Feedbacks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve feedback")
	}

	return ctx.JSON(http.StatusOK, toFeedbacks(feedbacks))
}

// GetPendingFeedback handles GET /api/v1/me/pending-feedback - the caller's
// completed orders that still await a rating.
func (s *Server) GetPendingFeedback(ctx echo.Context) error {
	principal, err := requirePrincipal(ctx)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	query, err := queries.NewGetPendingFeedbackQuery(principal.ID)
	if err != nil {
		return s.writeError(ctx, err, "")
	}

	orders, err := s.h.PendingFeedback.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, "Failed to retrieve pending feedback")
	}

	return ctx.JSON(http.StatusOK, toOrderSummaries(orders))
}
