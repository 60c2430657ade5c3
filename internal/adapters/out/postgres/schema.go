package postgres

import (
	"visadesk/internal/adapters/out/postgres/applicationrepo"
	"visadesk/internal/adapters/out/postgres/orderrepo"
	"visadesk/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables, parents before children.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&orderrepo.OrderDTO{},
		&applicationrepo.ApplicationDTO{},
		&applicationrepo.DocumentDTO{},
	)
}

// TruncateAll empties every table. Used by integration tests.
func TruncateAll(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE documents, applications, orders, users CASCADE").Error
}
