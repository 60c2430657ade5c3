package http

import (
	"net/http"
	"time"

	"visadesk/internal/core/application/usecases/commands"
	"visadesk/internal/core/application/usecases/queries"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/order"
	"visadesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	current, _ := CurrentUser(c)

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	customerID := current.ID
	if current.IsStaff() && req.CustomerID != "" {
		id, err := kernel.UUIDFromString(req.CustomerID)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause("customerId", err)
		}
		customerID = id
	}

	travelDate, err := parseTravelDate(req.TravelDate)
	if err != nil {
		return err
	}

	applicants := make([]commands.Applicant, len(req.Applicants))
	for i, a := range req.Applicants {
		applicants[i] = commands.Applicant{Name: a.Name, PassportNumber: a.PassportNumber}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, req.Destination, travelDate, applicants)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders. Customers only see their own orders.
func (s *Server) GetOrders(c echo.Context) error {
	current, _ := CurrentUser(c)

	status := order.Unknown
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return err
		}
		status = parsed
	}

	query, err := queries.NewGetOrdersQuery(status, ownerFilter(current))
	if err != nil {
		return err
	}

	views, err := s.handlers.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}
	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id. Another customer's order is
// reported as not found.
func (s *Server) GetOrder(c echo.Context) error {
	current, _ := CurrentUser(c)

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, ownerFilter(current))
	if err != nil {
		return err
	}

	view, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrder(view))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ChangeStatusRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return err
	}

	if err = s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func ownerFilter(u SessionUser) *kernel.UUID {
	if u.IsStaff() {
		return nil
	}
	id := u.ID
	return &id
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// parseTravelDate accepts a calendar date (taken as UTC midnight) or an
// RFC 3339 timestamp.
func parseTravelDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errs.NewValueIsRequiredError("travelDate")
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("travelDate", err)
	}
	return t, nil
}
