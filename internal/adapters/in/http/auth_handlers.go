package http

import (
	"net/http"

	"visadesk/internal/core/application/usecases/commands"
	"visadesk/internal/core/application/usecases/queries"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Register handles POST /api/v1/auth/register. Self-registered users are
// always customers.
func (s *Server) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), req.Email, req.Name, user.Customer, req.Password)
	if err != nil {
		return err
	}

	u, err := s.handlers.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, User{
		ID:    u.ID().String(),
		Email: u.Email(),
		Name:  u.Name(),
		Role:  u.Role().String(),
	})
}

// Login handles POST /api/v1/auth/login. A fresh session id is issued on
// every successful login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	view, err := s.handlers.AuthenticateUser.Handle(
		c.Request().Context(),
		queries.NewAuthenticateUserQuery(req.Email, req.Password),
	)
	if err != nil {
		return err
	}

	sess, err := s.sessions.New(c.Request(), s.cookie)
	if sess == nil {
		return err
	}
	sess.ID = ""
	sess.Values = map[any]any{}
	putSessionUser(sess, SessionUser{ID: view.ID, Email: view.Email, Name: view.Name, Role: view.Role})
	if err = sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUser(view))
}

// Logout handles POST /api/v1/auth/logout.
func (s *Server) Logout(c echo.Context) error {
	sess, err := s.sessions.Get(c.Request(), s.cookie)
	if sess == nil {
		return err
	}
	sess.Options.MaxAge = -1
	if err = sess.Save(c.Request(), c.Response()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me handles GET /api/v1/auth/me.
func (s *Server) Me(c echo.Context) error {
	current, _ := CurrentUser(c)

	query, err := queries.NewGetUserQuery(current.ID)
	if err != nil {
		return err
	}
	view, err := s.handlers.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUser(view))
}
