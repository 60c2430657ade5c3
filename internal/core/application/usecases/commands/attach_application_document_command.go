package commands

import (
	"errors"
	"io"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/services"
	"visadesk/internal/pkg/errs"
	"visadesk/internal/pkg/guard"
)

var (
	ErrAttachApplicationDocumentCommandIsNotConstructed = errors.New(
		"AttachApplicationDocumentCommand must be created via NewAttachApplicationDocumentCommand constructor",
	)

	// ErrAccessDenied is returned when a customer acts on someone else's order.
	ErrAccessDenied = services.ErrAccessDenied
)

// Requester identifies who issues a command that is subject to ownership
// checks. Staff may act on any order.
type Requester struct {
	UserID  kernel.UUID
	IsStaff bool
}

// AttachApplicationDocumentCommand carries one uploaded file. Content is
// read exactly once by the handler.
type AttachApplicationDocumentCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	documentID    kernel.UUID
	requester     Requester
	fileName      string
	contentType   string
	content       io.Reader

	guard guard.ConstructorGuard
}

func NewAttachApplicationDocumentCommand(
	applicationID, documentID kernel.UUID,
	requester Requester,
	fileName, contentType string,
	content io.Reader,
) (AttachApplicationDocumentCommand, error) {
	var contentErr error
	if content == nil {
		contentErr = errs.NewValueIsRequiredError("content")
	}
	var fileNameErr error
	if fileName == "" {
		fileNameErr = errs.NewValueIsRequiredError("fileName")
	}

	if err := errors.Join(
		applicationID.Validate(),
		documentID.Validate(),
		requester.UserID.Validate(),
		fileNameErr,
		contentErr,
	); err != nil {
		return AttachApplicationDocumentCommand{}, err
	}

	return AttachApplicationDocumentCommand{
		applicationID: applicationID,
		documentID:    documentID,
		requester:     requester,
		fileName:      fileName,
		contentType:   contentType,
		content:       content,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c AttachApplicationDocumentCommand) Validate() error {
	return c.guard.Validate(ErrAttachApplicationDocumentCommandIsNotConstructed)
}

func (c AttachApplicationDocumentCommand) ApplicationID() kernel.UUID { return c.applicationID }
func (c AttachApplicationDocumentCommand) DocumentID() kernel.UUID    { return c.documentID }
func (c AttachApplicationDocumentCommand) Requester() Requester       { return c.requester }
func (c AttachApplicationDocumentCommand) FileName() string           { return c.fileName }
func (c AttachApplicationDocumentCommand) ContentType() string        { return c.contentType }
func (c AttachApplicationDocumentCommand) Content() io.Reader         { return c.content }
