package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/SiamIslamSagor/prime-property-plus-server/internal/auth"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/handlers"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/models"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/payment"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/repository"
	"github.com/SiamIslamSagor/prime-property-plus-server/internal/routes"
)

// In-memory repositories backing the handler tests, mirroring the unique
// index and sentinel error behavior of the Mongo implementations.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]models.User{}}
}

func (r *fakeUserRepo) Insert(_ context.Context, u *models.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	id := primitive.NewObjectID()
	u.ID = id
	r.users[id] = *u
	return id, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.User{}
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) SetRole(_ context.Context, id primitive.ObjectID, role string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return 0, nil
	}
	u.Role = role
	r.users[id] = u
	return 1, nil
}

type fakePropertyRepo struct {
	mu    sync.Mutex
	props map[primitive.ObjectID]models.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{props: map[primitive.ObjectID]models.Property{}}
}

func (r *fakePropertyRepo) Insert(_ context.Context, p *models.Property) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := primitive.NewObjectID()
	p.ID = id
	r.props[id] = *p
	return id, nil
}

func (r *fakePropertyRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.props[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *fakePropertyRepo) FindAll(_ context.Context) ([]models.Property, error) {
	return r.filter(func(models.Property) bool { return true }), nil
}

func (r *fakePropertyRepo) FindVerified(_ context.Context) ([]models.Property, error) {
	return r.filter(func(p models.Property) bool {
		return p.VerificationStatus == models.VerificationVerified
	}), nil
}

func (r *fakePropertyRepo) FindAdvertised(_ context.Context) ([]models.Property, error) {
	return r.filter(func(p models.Property) bool {
		return p.Advertised && p.VerificationStatus == models.VerificationVerified
	}), nil
}

func (r *fakePropertyRepo) FindByAgent(_ context.Context, email string) ([]models.Property, error) {
	return r.filter(func(p models.Property) bool { return p.AgentEmail == email }), nil
}

func (r *fakePropertyRepo) SetVerificationStatus(_ context.Context, id primitive.ObjectID, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.props[id]
	if !ok {
		return 0, nil
	}
	p.VerificationStatus = status
	r.props[id] = p
	return 1, nil
}

func (r *fakePropertyRepo) SetAdvertised(_ context.Context, id primitive.ObjectID, advertised bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.props[id]
	if !ok {
		return 0, nil
	}
	p.Advertised = advertised
	r.props[id] = p
	return 1, nil
}

func (r *fakePropertyRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.props[id]; !ok {
		return 0, nil
	}
	delete(r.props, id)
	return 1, nil
}

func (r *fakePropertyRepo) filter(keep func(models.Property) bool) []models.Property {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Property{}
	for _, p := range r.props {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[primitive.ObjectID]models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[primitive.ObjectID]models.Review{}}
}

func (r *fakeReviewRepo) Insert(_ context.Context, rev *models.Review) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := primitive.NewObjectID()
	rev.ID = id
	r.reviews[id] = *rev
	return id, nil
}

func (r *fakeReviewRepo) FindAll(_ context.Context) ([]models.Review, error) {
	return r.filter(func(models.Review) bool { return true }), nil
}

func (r *fakeReviewRepo) FindByReviewer(_ context.Context, email string) ([]models.Review, error) {
	return r.filter(func(rev models.Review) bool { return rev.ReviewerEmail == email }), nil
}

func (r *fakeReviewRepo) FindByProperty(_ context.Context, propertyID string) ([]models.Review, error) {
	return r.filter(func(rev models.Review) bool { return rev.PropertyID == propertyID }), nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reviews[id]; !ok {
		return 0, nil
	}
	delete(r.reviews, id)
	return 1, nil
}

func (r *fakeReviewRepo) filter(keep func(models.Review) bool) []models.Review {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Review{}
	for _, rev := range r.reviews {
		if keep(rev) {
			out = append(out, rev)
		}
	}
	return out
}

type fakeWishListRepo struct {
	mu      sync.Mutex
	entries map[primitive.ObjectID]models.WishListEntry
}

func newFakeWishListRepo() *fakeWishListRepo {
	return &fakeWishListRepo{entries: map[primitive.ObjectID]models.WishListEntry{}}
}

func (r *fakeWishListRepo) Insert(_ context.Context, w *models.WishListEntry) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.entries {
		if existing.RequesterEmail == w.RequesterEmail && existing.PropertyID == w.PropertyID {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	id := primitive.NewObjectID()
	w.ID = id
	r.entries[id] = *w
	return id, nil
}

func (r *fakeWishListRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.WishListEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.entries[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &w, nil
}

func (r *fakeWishListRepo) FindByRequester(_ context.Context, email string) ([]models.WishListEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.WishListEntry{}
	for _, w := range r.entries {
		if w.RequesterEmail == email {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeWishListRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return 0, nil
	}
	delete(r.entries, id)
	return 1, nil
}

type fakePurchaseRepo struct {
	mu      sync.Mutex
	records map[primitive.ObjectID]models.PurchaseRecord
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{records: map[primitive.ObjectID]models.PurchaseRecord{}}
}

func (r *fakePurchaseRepo) Insert(_ context.Context, p *models.PurchaseRecord) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := primitive.NewObjectID()
	p.ID = id
	r.records[id] = *p
	return id, nil
}

func (r *fakePurchaseRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.PurchaseRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *fakePurchaseRepo) FindByBuyer(_ context.Context, email string) ([]models.PurchaseRecord, error) {
	return r.filter(func(p models.PurchaseRecord) bool { return p.BuyerEmail == email }), nil
}

func (r *fakePurchaseRepo) FindByAgent(_ context.Context, email string) ([]models.PurchaseRecord, error) {
	return r.filter(func(p models.PurchaseRecord) bool { return p.AgentEmail == email }), nil
}

func (r *fakePurchaseRepo) SetPayment(_ context.Context, id primitive.ObjectID, transactionID, paymentDate string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.records[id]
	if !ok {
		return 0, nil
	}
	p.TransactionID = transactionID
	p.PaymentDate = paymentDate
	p.Status = models.PurchaseBought
	r.records[id] = p
	return 1, nil
}

func (r *fakePurchaseRepo) filter(keep func(models.PurchaseRecord) bool) []models.PurchaseRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.PurchaseRecord{}
	for _, p := range r.records {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

type fakeIntentCreator struct {
	secret     string
	err        error
	lastAmount float64
}

func (f *fakeIntentCreator) CreateIntent(_ context.Context, amount float64) (string, error) {
	f.lastAmount = amount
	if f.err != nil {
		return "", f.err
	}
	if amount <= 0 {
		return "", payment.ErrInvalidAmount
	}
	return f.secret, nil
}

// fixture bundles the fakes behind a fully routed Fiber app.
type fixture struct {
	app       *fiber.App
	tokens    *auth.TokenManager
	users     *fakeUserRepo
	props     *fakePropertyRepo
	reviews   *fakeReviewRepo
	wishes    *fakeWishListRepo
	purchases *fakePurchaseRepo
	intents   *fakeIntentCreator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		tokens:    auth.NewTokenManager("test-secret", 2*time.Hour),
		users:     newFakeUserRepo(),
		props:     newFakePropertyRepo(),
		reviews:   newFakeReviewRepo(),
		wishes:    newFakeWishListRepo(),
		purchases: newFakePurchaseRepo(),
		intents:   &fakeIntentCreator{secret: "pi_test_secret"},
	}
	logger := zap.NewNop()
	f.app = fiber.New()
	routes.Register(f.app, routes.Deps{
		Tokens:   f.tokens,
		Users:    f.users,
		Auth:     handlers.NewAuthHandler(f.tokens, logger),
		User:     handlers.NewUserHandler(f.users, logger),
		Property: handlers.NewPropertyHandler(f.props, logger),
		Review:   handlers.NewReviewHandler(f.reviews, logger),
		WishList: handlers.NewWishListHandler(f.wishes, logger),
		Purchase: handlers.NewPurchaseHandler(f.purchases, logger),
		Payment:  handlers.NewPaymentHandler(f.intents, logger),
	})
	return f
}

// addUser seeds an account directly in the fake store.
func (f *fixture) addUser(t *testing.T, email, role string) {
	t.Helper()
	_, err := f.users.Insert(context.Background(), &models.User{Email: email, Role: role})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
}

// token issues a signed token for the given identity.
func (f *fixture) token(t *testing.T, email string) string {
	t.Helper()
	return f.namedToken(t, email, "")
}

// namedToken issues a signed token carrying a display name claim.
func (f *fixture) namedToken(t *testing.T, email, name string) string {
	t.Helper()
	tok, err := f.tokens.Issue(email, name)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

// request runs an HTTP request through the app and decodes the JSON body
// into a generic map. token == "" sends no Authorization header.
func (f *fixture) request(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	resp, raw := f.rawRequest(t, method, path, token, body)
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode response %q: %v", raw, err)
		}
	}
	return resp.StatusCode, out
}

// requestList is request for endpoints returning JSON arrays.
func (f *fixture) requestList(t *testing.T, method, path, token string) (int, []map[string]any) {
	t.Helper()
	resp, raw := f.rawRequest(t, method, path, token, nil)
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("decode list response %q: %v", raw, err)
	}
	return resp.StatusCode, out
}

func (f *fixture) rawRequest(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := f.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return resp, raw
}
