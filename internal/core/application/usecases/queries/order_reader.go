package queries

import (
	"context"
	"time"

	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderReader loads orders with their applications and documents in three
// queries regardless of the number of orders.
type orderReader struct {
	db *gorm.DB
}

func (r orderReader) read(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]OrderView, error) {
	rows, err := scope(r.db.WithContext(ctx).
		Table("orders").
		Select("id, customer_id, destination, travel_date, status")).
		Order("travel_date, id").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			id, customerID uuid.UUID
			view           OrderView
			status         string
		)
		if err = rows.Scan(&id, &customerID, &view.Destination, &view.TravelDate, &status); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if view.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		view.Applications = make([]ApplicationView, 0)

		views = append(views, view)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return views, nil
	}

	applications, err := r.readApplications(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range views {
		if apps, ok := applications[views[i].ID.Bytes()]; ok {
			views[i].Applications = apps
		}
	}

	return views, nil
}

func (r orderReader) readApplications(
	ctx context.Context,
	orderIDs []uuid.UUID,
) (map[uuid.UUID][]ApplicationView, error) {
	rows, err := r.db.WithContext(ctx).
		Table("applications").
		Select("id, order_id, applicant_name, passport_number, status").
		Where("order_id IN ?", orderIDs).
		Order("order_id, position").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOrder := make(map[uuid.UUID][]ApplicationView)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			id, orderID uuid.UUID
			view        ApplicationView
			status      string
		)
		if err = rows.Scan(&id, &orderID, &view.ApplicantName, &view.PassportNumber, &status); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.Status, err = application.ParseStatus(status); err != nil {
			return nil, err
		}
		view.Documents = make([]DocumentView, 0)

		byOrder[orderID] = append(byOrder[orderID], view)
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return byOrder, nil
	}

	documents, err := r.readDocuments(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, apps := range byOrder {
		for i := range apps {
			if docs, ok := documents[apps[i].ID.Bytes()]; ok {
				apps[i].Documents = docs
			}
		}
	}

	return byOrder, nil
}

func (r orderReader) readDocuments(
	ctx context.Context,
	applicationIDs []uuid.UUID,
) (map[uuid.UUID][]DocumentView, error) {
	rows, err := r.db.WithContext(ctx).
		Table("documents").
		Select("id, application_id, file_name, content_type, size, created_at").
		Where("application_id IN ?", applicationIDs).
		Order("created_at, id").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byApplication := make(map[uuid.UUID][]DocumentView)
	for rows.Next() {
		var (
			id, applicationID uuid.UUID
			view              DocumentView
			uploadedAt        time.Time
		)
		if err = rows.Scan(&id, &applicationID, &view.FileName, &view.ContentType, &view.Size, &uploadedAt); err != nil {
			return nil, err
		}
		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		view.UploadedAt = uploadedAt

		byApplication[applicationID] = append(byApplication[applicationID], view)
	}

	return byApplication, rows.Err()
}
