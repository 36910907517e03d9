package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/wip-project/wipcli/internal/client/api"
	"github.com/wip-project/wipcli/internal/client/models"
	"github.com/wip-project/wipcli/internal/client/session"
	"github.com/wip-project/wipcli/internal/client/storage"
	"github.com/wip-project/wipcli/internal/logging"
)

// fakeClient implements api.Client for unit tests. Unset responses yield a
// generic error so tests fail loudly when they hit an endpoint they did not
// arrange.
type fakeClient struct {
	mu sync.Mutex

	signInBody []byte
	signInErr  error
	signInN    int

	signUpBody []byte
	signUpErr  error
	signUpN    int
	signUpReq  api.SignUpRequest

	sendCodeErr   error
	verifyCodeErr error

	updateBody  []byte
	updateErr   error
	updateToken string
	updateReq   api.ProfileUpdate

	uploadBody     []byte
	uploadErr      error
	uploadFilename string

	products   map[int64]*models.Product
	productErr error
	updatedP   []models.Product
	updateN    int

	suppliers   map[int64]*models.Supplier
	supplierErr error

	orders    []models.Order
	ordersErr error
	createdO  *models.Order
	createErr error

	contents    []models.Content
	contentsErr error
}

var _ api.Client = (*fakeClient)(nil)

var errUnarranged = errors.New("unarranged endpoint")

func (f *fakeClient) SignIn(_ context.Context, email, password string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signInN++
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	if f.signInBody == nil {
		return nil, errUnarranged
	}
	return f.signInBody, nil
}

func (f *fakeClient) SignUp(_ context.Context, req api.SignUpRequest) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signUpN++
	f.signUpReq = req
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	if f.signUpBody == nil {
		return nil, errUnarranged
	}
	return f.signUpBody, nil
}

func (f *fakeClient) SendVerificationCode(context.Context, string) error { return f.sendCodeErr }
func (f *fakeClient) VerifyCode(context.Context, string, string) error   { return f.verifyCodeErr }

func (f *fakeClient) UpdateProfile(_ context.Context, token string, update api.ProfileUpdate) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateToken, f.updateReq = token, update
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateBody == nil {
		return nil, errUnarranged
	}
	return f.updateBody, nil
}

func (f *fakeClient) UploadProfilePicture(_ context.Context, token string, userID int64, filename string, file io.Reader) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploadFilename = filename
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	if f.uploadBody == nil {
		return nil, errUnarranged
	}
	return f.uploadBody, nil
}

func (f *fakeClient) ProductsByUser(_ context.Context, userID int64) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.productErr != nil {
		return nil, f.productErr
	}
	out := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeClient) ProductByID(_ context.Context, id int64) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.productErr != nil {
		return nil, f.productErr
	}
	p, ok := f.products[id]
	if !ok {
		return nil, &api.APIError{Status: 404, Message: "product not found"}
	}
	cp := *p
	return &cp, nil
}

func (f *fakeClient) CreateProduct(_ context.Context, p models.Product) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = int64(len(f.products) + 1)
	if f.products == nil {
		f.products = map[int64]*models.Product{}
	}
	cp := p
	f.products[p.ID] = &cp
	return &p, nil
}

func (f *fakeClient) UpdateProduct(_ context.Context, p models.Product) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateN++
	f.updatedP = append(f.updatedP, p)
	cp := p
	return &cp, nil
}

func (f *fakeClient) DeleteProduct(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

func (f *fakeClient) SuppliersByUser(_ context.Context, userID int64) ([]models.Supplier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.supplierErr != nil {
		return nil, f.supplierErr
	}
	out := make([]models.Supplier, 0, len(f.suppliers))
	for _, s := range f.suppliers {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeClient) SupplierByID(_ context.Context, id int64) (*models.Supplier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.supplierErr != nil {
		return nil, f.supplierErr
	}
	s, ok := f.suppliers[id]
	if !ok {
		return nil, &api.APIError{Status: 404, Message: "supplier not found"}
	}
	cp := *s
	return &cp, nil
}

func (f *fakeClient) CreateSupplier(_ context.Context, s models.Supplier) (*models.Supplier, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = int64(len(f.suppliers) + 1)
	if f.suppliers == nil {
		f.suppliers = map[int64]*models.Supplier{}
	}
	cp := s
	f.suppliers[s.ID] = &cp
	return &s, nil
}

func (f *fakeClient) OrdersByUser(context.Context, int64) ([]models.Order, error) {
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return f.orders, nil
}

func (f *fakeClient) OrderByID(_ context.Context, id int64) (*models.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, &api.APIError{Status: 404, Message: "order not found"}
}

func (f *fakeClient) CreateOrder(_ context.Context, o models.Order) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	o.ID = 1000 + int64(len(f.orders))
	f.createdO = &o
	return &o, nil
}

func (f *fakeClient) Contents(context.Context) ([]models.Content, error) {
	if f.contentsErr != nil {
		return nil, f.contentsErr
	}
	return f.contents, nil
}

// ---- shared test plumbing ----

type memStore struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newMemStore() *memStore { return &memStore{m: make(map[string][]byte)} }

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[key], nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = append([]byte(nil), value...)
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

func (s *memStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = make(map[string][]byte)
	return nil
}

func quietLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newSessionPair builds a restored Session over an in-memory store.
func newSessionPair() (*session.Session, *storage.SessionStore, *memStore) {
	kv := newMemStore()
	store := storage.NewSessionStore(kv, quietLogger())
	sess := session.NewSession(store, quietLogger())
	_ = sess.Restore(context.Background())
	return sess, store, kv
}
