package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RunStatusReconciliation handles POST /api/v1/admin/jobs/status-reconciliation.
func (s *Server) RunStatusReconciliation(c echo.Context) error {
	result, err := s.handlers.Reconciliation.RunNow(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ReconciliationResult{
		Checked:             result.Checked,
		RetiredOrders:       result.RetiredOrders,
		RetiredApplications: result.RetiredApplications,
	})
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
