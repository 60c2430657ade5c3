package application

import (
	"errors"
	"fmt"
	"strings"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/pkg/errs"
)

var (
	ErrApplicationIsNotConstructed = errors.New("Application must be created via NewApplication constructor")
	ErrApplicationIsPast           = errors.New("application is past and can no longer change")
)

// Application is one traveller's visa application. It is owned by exactly
// one order and is persisted and updated independently of it.
type Application struct {
	id             kernel.UUID
	orderID        kernel.UUID
	applicantName  string
	passportNumber string
	status         Status
	documents      []Document

	isConstructed bool
}

// NewApplication creates a Submitted application for the given order.
func NewApplication(id, orderID kernel.UUID, applicantName, passportNumber string) (*Application, error) {
	a := &Application{
		status:        Submitted,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrderID(orderID),
		a.setApplicantName(applicantName),
		a.setPassportNumber(passportNumber),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreApplication rebuilds an application loaded from storage.
func RestoreApplication(
	id, orderID kernel.UUID,
	applicantName, passportNumber string,
	status Status,
	documents []Document,
) (*Application, error) {
	a, err := NewApplication(id, orderID, applicantName, passportNumber)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	for _, d := range documents {
		if err = d.Validate(); err != nil {
			return nil, err
		}
	}

	a.status = status
	a.documents = append([]Document(nil), documents...)
	return a, nil
}

func (a *Application) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrApplicationIsNotConstructed
	}
	return nil
}

func (a *Application) ID() kernel.UUID        { return a.id }
func (a *Application) OrderID() kernel.UUID   { return a.orderID }
func (a *Application) ApplicantName() string  { return a.applicantName }
func (a *Application) PassportNumber() string { return a.passportNumber }
func (a *Application) Status() Status         { return a.status }

// Documents returns a copy of the attached documents in upload order.
func (a *Application) Documents() []Document {
	return append([]Document(nil), a.documents...)
}

// ChangeStatus applies a staff decision. Past applications are frozen.
func (a *Application) ChangeStatus(target Status) error {
	next, err := a.status.MoveTo(target)
	if err != nil {
		return err
	}
	a.status = next
	return nil
}

// Retire moves the application to Past. Retiring a Past application is a
// no-op so the nightly reconciliation stays idempotent.
func (a *Application) Retire() {
	a.status = Past
}

// AttachDocument records an uploaded file on the application.
func (a *Application) AttachDocument(doc Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if a.status.IsFinal() {
		return ErrApplicationIsPast
	}
	a.documents = append(a.documents, doc)
	return nil
}

func (a *Application) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Application) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	a.orderID = orderID
	return nil
}

func (a *Application) setApplicantName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("applicantName")
	}
	a.applicantName = name
	return nil
}

func (a *Application) setPassportNumber(number string) error {
	number = strings.ToUpper(strings.TrimSpace(number))
	if number == "" {
		return errs.NewValueIsRequiredError("passportNumber")
	}
	if len(number) > 20 {
		return errs.NewValueIsOutOfRangeError("passportNumber length", len(number), 1, 20)
	}
	a.passportNumber = number
	return nil
}

// String is used in log lines.
func (a *Application) String() string {
	return fmt.Sprintf("application %s (%s)", a.id, a.status)
}
