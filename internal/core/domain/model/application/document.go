package application

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"visadesk/internal/core/domain/model/kernel"
	"visadesk/internal/pkg/errs"
	"visadesk/internal/pkg/guard"
)

var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")

// Document is an uploaded file (passport scan, photo, itinerary) belonging
// to an application.
type Document struct {
	id          kernel.UUID
	fileName    string
	storedPath  string
	contentType string
	size        int64

	guard guard.ConstructorGuard
}

// BaseFileName strips any directory part from a client supplied file name,
// for both slash styles.
func BaseFileName(fileName string) string {
	return filepath.Base(strings.ReplaceAll(strings.TrimSpace(fileName), "\\", "/"))
}

// NewDocument validates the upload metadata. fileName is reduced to its base
// name so that client supplied paths never leak into storage keys.
func NewDocument(id kernel.UUID, fileName, storedPath, contentType string, size int64) (Document, error) {
	base := BaseFileName(fileName)

	var problems []error
	if err := id.Validate(); err != nil {
		problems = append(problems, err)
	}
	if base == "" || base == "." || base == "/" {
		problems = append(problems, errs.NewValueIsRequiredError("fileName"))
	}
	if strings.TrimSpace(storedPath) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("storedPath"))
	}
	if size <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not greater than 0", size)))
	}
	if err := errors.Join(problems...); err != nil {
		return Document{}, err
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return Document{
		id:          id,
		fileName:    base,
		storedPath:  storedPath,
		contentType: contentType,
		size:        size,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (d Document) Validate() error {
	return d.guard.Validate(ErrDocumentIsNotConstructed)
}

func (d Document) ID() kernel.UUID     { return d.id }
func (d Document) FileName() string    { return d.fileName }
func (d Document) StoredPath() string  { return d.storedPath }
func (d Document) ContentType() string { return d.contentType }
func (d Document) Size() int64         { return d.size }
