package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wip-project/wipcli/internal/client/models"
	"github.com/wip-project/wipcli/internal/logging"
)

// HTTPClient is the production Client implementation. It serializes JSON to
// a single fixed base URL, tags every request with an X-Request-ID and maps
// transport failures to ErrUnavailable.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

// do issues a single request and returns the response body. Transport
// failures come back as ErrUnavailable (the raw cause is only logged);
// non-2xx statuses come back as *APIError carrying the body text verbatim.
func (c *HTTPClient) do(ctx context.Context, method, path, token, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "err", err)
		return nil, ErrUnavailable
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn(ctx, "reading response failed", "method", method, "path", path, "err", err)
		return nil, ErrUnavailable
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}
	return respBody, nil
}

// doJSON marshals in (when non-nil) as the JSON request body and unmarshals
// the response into out (when non-nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	respBody, err := c.do(ctx, method, path, token, contentType, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// ---- auth ----

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) ([]byte, error) {
	in := map[string]string{"email": email, "password": password}
	b, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/auth/signin", "", "application/json", bytes.NewReader(b))
}

func (c *HTTPClient) SignUp(ctx context.Context, req SignUpRequest) ([]byte, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/auth/signup", "", "application/json", bytes.NewReader(b))
}

func (c *HTTPClient) SendVerificationCode(ctx context.Context, email string) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/send-verification", "", map[string]string{"email": email}, nil)
}

func (c *HTTPClient) VerifyCode(ctx context.Context, email, code string) error {
	in := map[string]string{"email": email, "code": code}
	return c.doJSON(ctx, http.MethodPost, "/auth/verify-code", "", in, nil)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) ([]byte, error) {
	b, err := json.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	path := fmt.Sprintf("/users/%d/profile", update.ID)
	return c.do(ctx, http.MethodPut, path, token, "application/json", bytes.NewReader(b))
}

func (c *HTTPClient) UploadProfilePicture(ctx context.Context, token string, userID int64, filename string, file io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("reading picture: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building multipart body: %w", err)
	}

	path := fmt.Sprintf("/users/%d/profile-picture", userID)
	return c.do(ctx, http.MethodPut, path, token, mw.FormDataContentType(), &buf)
}

// ---- products ----

func (c *HTTPClient) ProductsByUser(ctx context.Context, userID int64) ([]models.Product, error) {
	var out []models.Product
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/user/%d", userID), "", nil, &out)
	return out, err
}

func (c *HTTPClient) ProductByID(ctx context.Context, id int64) (*models.Product, error) {
	var out models.Product
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.doJSON(ctx, http.MethodPost, "/products", "", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, p models.Product) (*models.Product, error) {
	var out models.Product
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/products/%d", p.ID), "", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), "", nil, nil)
}

// ---- suppliers ----

func (c *HTTPClient) SuppliersByUser(ctx context.Context, userID int64) ([]models.Supplier, error) {
	var out []models.Supplier
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/suppliers/user/%d", userID), "", nil, &out)
	return out, err
}

func (c *HTTPClient) SupplierByID(ctx context.Context, id int64) (*models.Supplier, error) {
	var out models.Supplier
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/suppliers/%d", id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateSupplier(ctx context.Context, s models.Supplier) (*models.Supplier, error) {
	var out models.Supplier
	if err := c.doJSON(ctx, http.MethodPost, "/suppliers", "", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- orders ----

func (c *HTTPClient) OrdersByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	var out []models.Order
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/user/%d", userID), "", nil, &out)
	return out, err
}

func (c *HTTPClient) OrderByID(ctx context.Context, id int64) (*models.Order, error) {
	var out models.Order
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, o models.Order) (*models.Order, error) {
	var out models.Order
	if err := c.doJSON(ctx, http.MethodPost, "/orders", "", o, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---- contents ----

func (c *HTTPClient) Contents(ctx context.Context) ([]models.Content, error) {
	var out []models.Content
	err := c.doJSON(ctx, http.MethodGet, "/contents", "", nil, &out)
	return out, err
}
