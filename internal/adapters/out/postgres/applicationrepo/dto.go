// Package applicationrepo maps visa applications and their documents to the
// applications and documents tables.
package applicationrepo

import (
	"time"

	"visadesk/internal/core/domain/model/application"
	"visadesk/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ApplicationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index;not null"`
	// Position keeps the order in which applications were added to their order.
	Position       int
	ApplicantName  string        `gorm:"not null"`
	PassportNumber string        `gorm:"type:varchar(20);not null"`
	Status         string        `gorm:"type:varchar(16);index;not null"`
	Documents      []DocumentDTO `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
}

func (ApplicationDTO) TableName() string {
	return "applications"
}

type DocumentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ApplicationID uuid.UUID `gorm:"type:uuid;index;not null"`
	FileName      string    `gorm:"not null"`
	StoredPath    string    `gorm:"not null"`
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

func (DocumentDTO) TableName() string {
	return "documents"
}

// FromDomain converts an application, including its documents.
func FromDomain(a *application.Application, position int) ApplicationDTO {
	docs := a.Documents()
	dtos := make([]DocumentDTO, 0, len(docs))
	for _, d := range docs {
		dtos = append(dtos, documentFromDomain(a.ID(), d))
	}

	return ApplicationDTO{
		ID:             a.ID().Bytes(),
		OrderID:        a.OrderID().Bytes(),
		Position:       position,
		ApplicantName:  a.ApplicantName(),
		PassportNumber: a.PassportNumber(),
		Status:         a.Status().String(),
		Documents:      dtos,
	}
}

// ToDomain rebuilds an application with RestoreApplication.
func ToDomain(dto ApplicationDTO) (*application.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	status, err := application.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	docs := make([]application.Document, 0, len(dto.Documents))
	for _, d := range dto.Documents {
		doc, docErr := documentToDomain(d)
		if docErr != nil {
			return nil, docErr
		}
		docs = append(docs, doc)
	}

	return application.RestoreApplication(id, orderID, dto.ApplicantName, dto.PassportNumber, status, docs)
}

func documentFromDomain(applicationID kernel.UUID, d application.Document) DocumentDTO {
	return DocumentDTO{
		ID:            d.ID().Bytes(),
		ApplicationID: applicationID.Bytes(),
		FileName:      d.FileName(),
		StoredPath:    d.StoredPath(),
		ContentType:   d.ContentType(),
		Size:          d.Size(),
	}
}

func documentToDomain(dto DocumentDTO) (application.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return application.Document{}, err
	}
	return application.NewDocument(id, dto.FileName, dto.StoredPath, dto.ContentType, dto.Size)
}
