// Package queries contains read-only operations. Handlers read straight from
// the database through GORM and return flat views; they never load
// aggregates.
package queries

import (
	"time"

	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/order"
	"visadesk/internal/core/domain/model/user"
)

type OrderView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	Destination  string
	TravelDate   time.Time
	Status       order.Status
	Applications []ApplicationView
}

type ApplicationView struct {
	ID             kernel.UUID
	ApplicantName  string
	PassportNumber string
	Status         application.Status
	Documents      []DocumentView
}

type DocumentView struct {
	ID          kernel.UUID
	FileName    string
	ContentType string
	Size        int64
	UploadedAt  time.Time
}

type UserView struct {
	ID    kernel.UUID
	Email string
	Name  string
	Role  user.Role
}
