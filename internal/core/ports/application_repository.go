package ports

import (
	"context"

	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"
)

// ApplicationRepository persists single applications independently of
// their order.
type ApplicationRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*application.Application, error)

	// Update writes only the application status.
	Update(ctx context.Context, aggregate *application.Application) error

	// AddDocument records an uploaded document for the application.
	AddDocument(ctx context.Context, applicationID kernel.UUID, doc application.Document) error
}
