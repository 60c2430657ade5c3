package queries

import (
	"context"
	"errors"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/user"
	"visadesk/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetUserQueryHandler struct {
	db *gorm.DB
}

func NewGetUserQueryHandler(db *gorm.DB) GetUserQueryHandler {
	return GetUserQueryHandler{db: db}
}

func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	var row struct {
		ID    uuid.UUID
		Email string
		Name  string
		Role  string
	}
	err := h.db.WithContext(ctx).
		Table("users").
		Select("id, email, name, role").
		Where("id = ?", query.UserID().Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserView{}, errs.NewObjectNotFoundError("user", query.UserID().String())
		}
		return UserView{}, err
	}

	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return UserView{}, err
	}
	role, err := user.ParseRole(row.Role)
	if err != nil {
		return UserView{}, err
	}

	return UserView{ID: id, Email: row.Email, Name: row.Name, Role: role}, nil
}
