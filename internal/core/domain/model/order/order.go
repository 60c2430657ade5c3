package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTravelDateNotPassed is returned by Retire when the travel date is not strictly
	// before the reference time.
	ErrTravelDateNotPassed = errors.New("travel date has not passed yet")
)

// Order is the aggregate root for a customer's visa-service order.
//
// Invariants:
//   - id, customer, destination and travel date are always set
//   - every application belongs to this order (matching order ID)
//   - an application is Past only when the order is Past
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	destination  string
	travelDate   time.Time
	status       Status
	applications []*application.Application

	isConstructed bool
}

// NewOrder creates a Created order without applications.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, "Schengen", travelDate)
//	if err != nil {
//	    return err
//	}
//	app, _ := application.NewApplication(kernel.NewUUID(), o.ID(), "Asha Rao", "Z1234567")
//	err = o.AddApplication(app)
func NewOrder(id, customerID kernel.UUID, destination string, travelDate time.Time) (*Order, error) {
	o := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDestination(destination),
		o.setTravelDate(travelDate),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order and its applications from storage.
// Status rules are checked against the restored applications, so a
// persisted half-retired order (some applications Past, order still
// Complete) is accepted; the next reconciliation finishes it.
func RestoreOrder(
	id, customerID kernel.UUID,
	destination string,
	travelDate time.Time,
	status Status,
	applications []*application.Application,
) (*Order, error) {
	o, err := NewOrder(id, customerID, destination, travelDate)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	for _, a := range applications {
		if err = o.adopt(a); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID         { return o.id }
func (o *Order) CustomerID() kernel.UUID { return o.customerID }
func (o *Order) Destination() string     { return o.destination }
func (o *Order) TravelDate() time.Time   { return o.travelDate }
func (o *Order) Status() Status          { return o.status }

// Applications returns the owned applications in insertion order. The
// slice is a copy; the applications are shared so that callers such as the
// reconciliation job can persist them one by one.
func (o *Order) Applications() []*application.Application {
	return append([]*application.Application(nil), o.applications...)
}

// Application returns the owned application with the given id.
func (o *Order) Application(id kernel.UUID) (*application.Application, bool) {
	for _, a := range o.applications {
		if a.ID().IsEqual(id) {
			return a, true
		}
	}
	return nil, false
}

// IsOwnedBy reports whether the order was placed by the given user.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.customerID.IsEqual(userID)
}

// AddApplication attaches a new application. Allowed while the order is
// Created or Processing.
func (o *Order) AddApplication(a *application.Application) error {
	if o.status != Created && o.status != Processing {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot add applications to a %s order", o.status),
		)
	}
	return o.adopt(a)
}

// TravelDateIsBefore reports whether the travel date is strictly before t.
func (o *Order) TravelDateIsBefore(t time.Time) bool {
	return o.travelDate.Before(t)
}

// IsDueForRetirement reports whether Retire(asOf) would succeed.
func (o *Order) IsDueForRetirement(asOf time.Time) bool {
	return o.status == Complete && o.TravelDateIsBefore(asOf)
}

// ChangeStatus applies a staff transition. Past cannot be requested here;
// it is reached only through Retire.
func (o *Order) ChangeStatus(target Status) error {
	var (
		next Status
		err  error
	)

	switch target {
	case Processing:
		next, err = o.status.StartProcessing()
	case Complete:
		next, err = o.status.Complete()
	case Cancelled:
		next, err = o.status.Cancel()
	case Unknown, Created, Past:
		err = invalidTransition(o.status, target)
	default:
		err = target.Validate()
	}
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// Retire moves a Complete order whose travel date is strictly before asOf
// to Past, together with every application it owns.
func (o *Order) Retire(asOf time.Time) error {
	if !o.TravelDateIsBefore(asOf) {
		return ErrTravelDateNotPassed
	}

	next, err := o.status.Retire()
	if err != nil {
		return err
	}

	for _, a := range o.applications {
		a.Retire()
	}
	o.status = next
	return nil
}

func (o *Order) adopt(a *application.Application) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.OrderID().IsEqual(o.id) {
		return errs.NewValueIsInvalidErrorWithCause(
			"application is invalid",
			fmt.Errorf("application %s belongs to order %s", a.ID(), a.OrderID()),
		)
	}
	if _, exists := o.Application(a.ID()); exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"application is invalid",
			fmt.Errorf("application %s is already part of the order", a.ID()),
		)
	}
	o.applications = append(o.applications, a)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDestination(destination string) error {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.destination = destination
	return nil
}

func (o *Order) setTravelDate(travelDate time.Time) error {
	if travelDate.IsZero() {
		return errs.NewValueIsRequiredError("travelDate")
	}
	o.travelDate = travelDate
	return nil
}
