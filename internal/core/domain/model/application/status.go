package application

import (
	"fmt"

	"visadesk/internal/pkg/errs"
)

// Status is the processing state of a single visa application.
//
// Staff may move an application freely between Submitted, Processing,
// Approved and Rejected, so a decision can be revised. Retirement moves any
// status to Past, which is final.
type Status int

const (
	Unknown Status = iota
	Submitted
	Processing
	Approved
	Rejected
	Past
)

var statusNames = map[Status]string{
	Unknown:    "Unknown",
	Submitted:  "Submitted",
	Processing: "Processing",
	Approved:   "Approved",
	Rejected:   "Rejected",
	Past:       "Past",
}

// ParseStatus maps a persisted or user supplied name back to a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if s != Unknown && n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not an application status", name),
	)
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) IsFinal() bool {
	return s == Past
}

// MoveTo returns target if staff may move an application from s to it.
// Past is reserved for retirement.
func (s Status) MoveTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsFinal() || target == Past {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot move application from %s to %s", s, target),
		)
	}
	return target, nil
}
