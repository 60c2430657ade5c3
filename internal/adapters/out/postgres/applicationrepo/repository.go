package applicationrepo

import (
	"context"
	"errors"

	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormApplicationRepository implements ApplicationRepository using GORM.
type GormApplicationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormApplicationRepository(db *gorm.DB, tracker aggregateTracker) *GormApplicationRepository {
	return &GormApplicationRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*application.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	err := r.db.WithContext(ctx).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("created_at, id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("application", id.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

// Update writes a single UPDATE of the status column. Applicant data,
// documents and the position within the order are left untouched.
func (r *GormApplicationRepository) Update(ctx context.Context, aggregate *application.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ApplicationDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("application", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormApplicationRepository) AddDocument(
	ctx context.Context,
	applicationID kernel.UUID,
	doc application.Document,
) error {
	if err := errors.Join(applicationID.Validate(), doc.Validate()); err != nil {
		return err
	}

	dto := documentFromDomain(applicationID, doc)
	return r.db.WithContext(ctx).Create(&dto).Error
}
