// Package api implements the REST client for the WIP backend. It owns the
// endpoint map, the wire shapes and the error taxonomy; everything above it
// works with canonical models only.
package api

import (
	"context"
	"io"

	"github.com/wip-project/wipcli/internal/client/models"
)

// SignUpRequest carries the six registration fields collected across the
// multi-step sign-up flow.
type SignUpRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	VerificationCode string `json:"verificationCode"`
	CompanyName      string `json:"companyName"`
	CreationDate     string `json:"creationDate"`
}

// ProfileUpdate is the complete profile record sent on update. The backend
// expects the id repeated in the body even though it is already in the path.
type ProfileUpdate struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	CompanyName        string `json:"companyName"`
	Preferences        string `json:"preferences"`
	CreationDate       string `json:"creationDate,omitempty"`
	ProfilePicturePath string `json:"profilePicturePath,omitempty"`
	Password           string `json:"password,omitempty"`
}

// Client is the full backend surface the WIP client talks to.
//
// Auth operations return the raw response body; normalization into the
// canonical User happens at the auth-gateway boundary, where field-presence
// violations are diagnosed. All methods honor context cancellation.
type Client interface {
	// Auth.
	SignIn(ctx context.Context, email, password string) ([]byte, error)
	SignUp(ctx context.Context, req SignUpRequest) ([]byte, error)
	SendVerificationCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) error
	UpdateProfile(ctx context.Context, token string, update ProfileUpdate) ([]byte, error)
	UploadProfilePicture(ctx context.Context, token string, userID int64, filename string, file io.Reader) ([]byte, error)

	// Products.
	ProductsByUser(ctx context.Context, userID int64) ([]models.Product, error)
	ProductByID(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, p models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	// Suppliers.
	SuppliersByUser(ctx context.Context, userID int64) ([]models.Supplier, error)
	SupplierByID(ctx context.Context, id int64) (*models.Supplier, error)
	CreateSupplier(ctx context.Context, s models.Supplier) (*models.Supplier, error)

	// Orders.
	OrdersByUser(ctx context.Context, userID int64) ([]models.Order, error)
	OrderByID(ctx context.Context, id int64) (*models.Order, error)
	CreateOrder(ctx context.Context, o models.Order) (*models.Order, error)

	// Educational contents.
	Contents(ctx context.Context) ([]models.Content, error)
}
