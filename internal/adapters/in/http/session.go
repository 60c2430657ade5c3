package http

import (
	"net/http"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/user"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	currentUserKey = "currentUser"

	sessionUserID = "user_id"
	sessionEmail  = "user_email"
	sessionName   = "user_name"
	sessionRole   = "user_role"
)

// SessionStore is a gorilla store whose server-side lifetime can be
// extended without rewriting the session.
type SessionStore interface {
	sessions.Store
	Touch(r *http.Request, s *sessions.Session) error
}

// SessionUser is the signed-in user as cached in the session.
type SessionUser struct {
	ID    kernel.UUID
	Email string
	Name  string
	Role  user.Role
}

func (u SessionUser) IsStaff() bool {
	return u.Role.IsStaff()
}

// CurrentUser returns the user attached by LoadSession.
func CurrentUser(c echo.Context) (SessionUser, bool) {
	u, ok := c.Get(currentUserKey).(SessionUser)
	return u, ok
}

// LoadSession attaches the session user to the context when the request
// carries an authenticated session and extends the session lifetime. Broken
// or unknown cookies are treated as anonymous.
func (s *Server) LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		sess, err := s.sessions.Get(req, s.cookie)
		if err != nil || sess.IsNew {
			return next(c)
		}

		u, ok := sessionUser(sess)
		if !ok {
			return next(c)
		}
		c.Set(currentUserKey, u)

		if err = s.sessions.Touch(req, sess); err != nil {
			s.logger.WarnContext(req.Context(), "Failed to refresh session", "error", err)
		}
		return next(c)
	}
}

func RequireSignedIn(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := CurrentUser(c); !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "sign in required")
		}
		return next(c)
	}
}

// RequireRole lets through signed-in users holding one of roles.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	allowed := make(map[user.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := CurrentUser(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "sign in required")
			}
			if _, has := allowed[u.Role]; !has {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

func sessionUser(sess *sessions.Session) (SessionUser, bool) {
	rawID, _ := sess.Values[sessionUserID].(string)
	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return SessionUser{}, false
	}
	rawRole, _ := sess.Values[sessionRole].(string)
	role, err := user.ParseRole(rawRole)
	if err != nil {
		return SessionUser{}, false
	}
	email, _ := sess.Values[sessionEmail].(string)
	name, _ := sess.Values[sessionName].(string)

	return SessionUser{ID: id, Email: email, Name: name, Role: role}, true
}

func putSessionUser(sess *sessions.Session, u SessionUser) {
	sess.Values[sessionUserID] = u.ID.String()
	sess.Values[sessionEmail] = u.Email
	sess.Values[sessionName] = u.Name
	sess.Values[sessionRole] = u.Role.String()
}
