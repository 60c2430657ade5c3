package http

import (
	"time"

	"visadesk/internal/core/application/usecases/queries"
	"visadesk/internal/core/domain/model/application"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ApplicantRequest struct {
	Name           string `json:"name"`
	PassportNumber string `json:"passportNumber"`
}

type CreateOrderRequest struct {
	// CustomerID is honoured for staff only; customers always order for
	// themselves.
	CustomerID  string             `json:"customerId,omitempty"`
	Destination string             `json:"destination"`
	TravelDate  string             `json:"travelDate"`
	Applicants  []ApplicantRequest `json:"applicants"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type Order struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"customerId"`
	Destination  string        `json:"destination"`
	TravelDate   time.Time     `json:"travelDate"`
	Status       string        `json:"status"`
	Applications []Application `json:"applications"`
}

type Application struct {
	ID             string     `json:"id"`
	ApplicantName  string     `json:"applicantName"`
	PassportNumber string     `json:"passportNumber"`
	Status         string     `json:"status"`
	Documents      []Document `json:"documents"`
}

type Document struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType,omitempty"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt,omitzero"`
}

type ReconciliationResult struct {
	Checked             int `json:"checked"`
	RetiredOrders       int `json:"retiredOrders"`
	RetiredApplications int `json:"retiredApplications"`
}

func toUser(v queries.UserView) User {
	return User{
		ID:    v.ID.String(),
		Email: v.Email,
		Name:  v.Name,
		Role:  v.Role.String(),
	}
}

func toOrder(v queries.OrderView) Order {
	apps := make([]Application, len(v.Applications))
	for i, a := range v.Applications {
		docs := make([]Document, len(a.Documents))
		for j, d := range a.Documents {
			docs[j] = Document{
				ID:          d.ID.String(),
				FileName:    d.FileName,
				ContentType: d.ContentType,
				Size:        d.Size,
				UploadedAt:  d.UploadedAt,
			}
		}
		apps[i] = Application{
			ID:             a.ID.String(),
			ApplicantName:  a.ApplicantName,
			PassportNumber: a.PassportNumber,
			Status:         a.Status.String(),
			Documents:      docs,
		}
	}

	return Order{
		ID:           v.ID.String(),
		CustomerID:   v.CustomerID.String(),
		Destination:  v.Destination,
		TravelDate:   v.TravelDate,
		Status:       v.Status.String(),
		Applications: apps,
	}
}

func toDocument(d application.Document) Document {
	return Document{
		ID:          d.ID().String(),
		FileName:    d.FileName(),
		ContentType: d.ContentType(),
		Size:        d.Size(),
	}
}
