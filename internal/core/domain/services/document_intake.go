package services

import (
	"errors"

	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/order"
)

var (
	// ErrAccessDenied is returned when a customer acts on someone else's order.
	ErrAccessDenied = errors.New("access denied")

	ErrOrderMismatch = errors.New("application does not belong to the given order")
)

// DocumentIntake is a domain service guarding uploads.
//
// Business rules:
//   - staff may upload to any application
//   - customers may upload only to applications of orders they own
//   - applications that are Past accept no more documents
//
// Example usage:
//
//	intake := NewDocumentIntake()
//	if err := intake.Admit(app, owner, requesterID, false); err != nil {
//	    return err
//	}
type DocumentIntake struct{}

func NewDocumentIntake() DocumentIntake {
	return DocumentIntake{}
}

// Admit returns nil when the upload may proceed. owner may be nil for staff
// requesters; for customers it must be the order app belongs to.
func (DocumentIntake) Admit(
	app *application.Application,
	owner *order.Order,
	requesterID kernel.UUID,
	staff bool,
) error {
	if err := app.Validate(); err != nil {
		return err
	}

	if !staff {
		if owner == nil {
			return ErrAccessDenied
		}
		if err := owner.Validate(); err != nil {
			return err
		}
		if !owner.ID().IsEqual(app.OrderID()) {
			return ErrOrderMismatch
		}
		if !owner.IsOwnedBy(requesterID) {
			return ErrAccessDenied
		}
	}

	if app.Status().IsFinal() {
		return application.ErrApplicationIsPast
	}
	return nil
}
