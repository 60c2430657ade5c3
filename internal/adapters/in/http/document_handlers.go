package http

import (
	"net/http"

	"visadesk/internal/core/application/usecases/commands"
	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const uploadField = "file"

// AttachDocument handles POST /api/v1/applications/:id/documents with a
// multipart body whose "file" part is stored against the application.
func (s *Server) AttachDocument(c echo.Context) error {
	current, _ := CurrentUser(c)

	applicationID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	header, err := c.FormFile(uploadField)
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause(uploadField, err)
	}
	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	cmd, err := commands.NewAttachApplicationDocumentCommand(
		applicationID,
		kernel.NewUUID(),
		commands.Requester{UserID: current.ID, IsStaff: current.IsStaff()},
		header.Filename,
		header.Header.Get(echo.HeaderContentType),
		file,
	)
	if err != nil {
		return err
	}

	doc, err := s.handlers.AttachDocument.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toDocument(doc))
}

// ChangeApplicationStatus handles PATCH /api/v1/applications/:id/status.
func (s *Server) ChangeApplicationStatus(c echo.Context) error {
	applicationID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req ChangeStatusRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	status, err := application.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeApplicationStatusCommand(applicationID, status)
	if err != nil {
		return err
	}

	if err = s.handlers.ChangeApplicationStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
