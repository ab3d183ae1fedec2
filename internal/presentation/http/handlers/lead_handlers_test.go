package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/BaillieLodges/beckons-go/internal/application/services"
	"github.com/BaillieLodges/beckons-go/internal/domain/entities/leads"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/performance"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type memoryLeadRepo struct {
	inquiries   []*leads.Inquiry
	subscribers []*leads.Subscriber
	fail        bool
}

func (r *memoryLeadRepo) StoreInquiry(inquiry *leads.Inquiry) error {
	if r.fail {
		return fmt.Errorf("db unavailable")
	}
	r.inquiries = append(r.inquiries, inquiry)
	return nil
}

func (r *memoryLeadRepo) StoreSubscriber(subscriber *leads.Subscriber) error {
	if r.fail {
		return fmt.Errorf("db unavailable")
	}
	r.subscribers = append(r.subscribers, subscriber)
	return nil
}

func (r *memoryLeadRepo) FindSubscriberByEmail(email string) (*leads.Subscriber, error) {
	return nil, nil
}

func newLeadRouter(t *testing.T, repo *memoryLeadRepo) *gin.Engine {
	t.Helper()
	cfg := logging.DefaultLoggerConfig()
	cfg.DefaultLevel = slog.LevelError
	logger, err := logging.NewChanneledLogger(cfg)
	require.NoError(t, err)

	tracker := performance.NewTracker(performance.DefaultTrackerConfig())
	leadService := services.NewLeadService(repo, nil, "", logger, tracker)
	handlers := NewLeadHandlers(leadService, logger)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/inquiries", handlers.PostInquiry)
	r.POST("/api/subscriptions", handlers.PostSubscription)
	return r
}

func TestPostInquiryJSON(t *testing.T) {
	assert := require.New(t)
	repo := &memoryLeadRepo{}
	router := newLeadRouter(t, repo)

	body := `{
		"firstName": "Alex",
		"lastName": "Reid",
		"email": "alex@example.com",
		"enquiry": "Availability in October?",
		"subscribe": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(http.StatusCreated, w.Code)

	var resp map[string]any
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(true, resp["success"])
	assert.NotEmpty(resp["id"])

	assert.Len(repo.inquiries, 1)
	assert.Len(repo.subscribers, 1, "opt-in on the inquiry form creates a subscriber")
}

func TestPostInquiryFormRedirects(t *testing.T) {
	assert := require.New(t)
	repo := &memoryLeadRepo{}
	router := newLeadRouter(t, repo)

	form := url.Values{
		"firstName": {"Alex"},
		"lastName":  {"Reid"},
		"email":     {"alex@example.com"},
		"enquiry":   {"Availability in October?"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(http.StatusSeeOther, w.Code)
	assert.Equal("/thank-you", w.Header().Get("Location"))
	assert.Len(repo.inquiries, 1)
}

func TestPostInquiryMissingRequiredField(t *testing.T) {
	assert := require.New(t)
	repo := &memoryLeadRepo{}
	router := newLeadRouter(t, repo)

	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(`{"firstName":"Alex"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(http.StatusBadRequest, w.Code)
	assert.Empty(repo.inquiries)
}

func TestPostInquiryInvalidEmail(t *testing.T) {
	assert := require.New(t)
	repo := &memoryLeadRepo{}
	router := newLeadRouter(t, repo)

	body := `{"firstName":"Alex","lastName":"Reid","email":"not-an-email","enquiry":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(http.StatusUnprocessableEntity, w.Code)
	assert.Empty(repo.inquiries)
}

func TestPostInquiryStoreFailure(t *testing.T) {
	assert := require.New(t)
	repo := &memoryLeadRepo{fail: true}
	router := newLeadRouter(t, repo)

	body := `{"firstName":"Alex","lastName":"Reid","email":"alex@example.com","enquiry":"Hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(http.StatusUnprocessableEntity, w.Code)
}

func TestPostSubscriptionJSON(t *testing.T) {
	assert := require.New(t)
	repo := &memoryLeadRepo{}
	router := newLeadRouter(t, repo)

	body := `{"firstName":"Alex","lastName":"Reid","email":"alex@example.com","countryRegion":"Australia"}`
	req := httptest.NewRequest(http.MethodPost, "/api/subscriptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(http.StatusCreated, w.Code)
	assert.Len(repo.subscribers, 1)
	assert.Equal("alex@example.com", repo.subscribers[0].Email)
}

func TestPostSubscriptionFormRedirects(t *testing.T) {
	assert := require.New(t)
	repo := &memoryLeadRepo{}
	router := newLeadRouter(t, repo)

	form := url.Values{
		"firstName": {"Alex"},
		"lastName":  {"Reid"},
		"email":     {"alex@example.com"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/subscriptions", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(http.StatusSeeOther, w.Code)
	assert.Equal("/thank-you", w.Header().Get("Location"))
}
