package order

import (
	"fmt"

	"visadesk/internal/pkg/errs"
)

// Status is the lifecycle state of a visa-service order.
//
// State transitions:
//
//	Created ──> Processing ──> Complete ──> Past
//	   │            │
//	   └────────────┴──> Cancelled
//
// Past is entered only through retirement, once the travel date has gone
// by. Past and Cancelled are final.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota

	// Created orders were placed by a customer and await an expert.
	Created

	// Processing orders are being worked on by an expert.
	Processing

	// Complete orders have every visa decided; the customer has not travelled yet.
	Complete

	// Past orders are complete and their travel date has gone by.
	Past

	// Cancelled orders were abandoned before completion.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Processing: "Processing",
		Complete:   "Complete",
		Past:       "Past",
		Cancelled:  "Cancelled",
	}
}

// ParseStatus maps a persisted or user supplied name back to a Status.
// Names are case sensitive, matching what String produces.
func ParseStatus(name string) (Status, error) {
	for s, n := range getStatusStrings() {
		if s != Unknown && n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not an order status", name),
	)
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Past || s == Cancelled
}

// StartProcessing transitions Created to Processing.
func (s Status) StartProcessing() (Status, error) {
	if s != Created {
		return Unknown, invalidTransition(s, Processing)
	}
	return Processing, nil
}

// Complete transitions Processing to Complete.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return Unknown, invalidTransition(s, Complete)
	}
	return Complete, nil
}

// Cancel transitions Created or Processing to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Created && s != Processing {
		return Unknown, invalidTransition(s, Cancelled)
	}
	return Cancelled, nil
}

// Retire transitions Complete to Past.
func (s Status) Retire() (Status, error) {
	if s != Complete {
		return Unknown, invalidTransition(s, Past)
	}
	return Past, nil
}

func invalidTransition(from, to Status) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to move to %s", from, to),
	)
}
