package commands

import (
	"errors"
	"strings"
	"time"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/pkg/errs"
	"visadesk/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrApplicantsAreRequired = errors.New("at least one applicant is required")
)

// Applicant is one traveller to open an application for.
type Applicant struct {
	Name           string
	PassportNumber string
}

// CreateOrderCommand represents a customer placing a visa order for one or
// more travellers.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, "Japan", travelDate,
//	    []Applicant{{Name: "Asha Rao", PassportNumber: "Z1234567"}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	destination string
	travelDate  time.Time
	applicants  []Applicant

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	destination string,
	travelDate time.Time,
	applicants []Applicant,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setDestination(destination),
		cmd.setTravelDate(travelDate),
		cmd.setApplicants(applicants),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID    { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateOrderCommand) Destination() string     { return c.destination }
func (c CreateOrderCommand) TravelDate() time.Time   { return c.travelDate }

func (c CreateOrderCommand) Applicants() []Applicant {
	return append([]Applicant(nil), c.applicants...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setTravelDate(travelDate time.Time) error {
	if travelDate.IsZero() {
		return errs.NewValueIsRequiredError("travelDate")
	}
	c.travelDate = travelDate
	return nil
}

func (c *CreateOrderCommand) setApplicants(applicants []Applicant) error {
	if len(applicants) == 0 {
		return ErrApplicantsAreRequired
	}
	c.applicants = append([]Applicant(nil), applicants...)
	return nil
}
