package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/BaillieLodges/beckons-go/internal/domain/entities/leads"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/email"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/logging"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/observability/performance"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/security"
)

// InquiryRequest carries one submitted inquiry form.
type InquiryRequest struct {
	FirstName     string `json:"firstName" form:"firstName" binding:"required"`
	LastName      string `json:"lastName" form:"lastName" binding:"required"`
	Email         string `json:"email" form:"email" binding:"required"`
	Phone         string `json:"phone" form:"phone"`
	CountryRegion string `json:"countryRegion" form:"countryRegion"`
	Enquiry       string `json:"enquiry" form:"enquiry" binding:"required"`
	Subscribe     bool   `json:"subscribe" form:"subscribe"`
}

// SubscriptionRequest carries one submitted email-subscription form.
type SubscriptionRequest struct {
	FirstName     string `json:"firstName" form:"firstName" binding:"required"`
	LastName      string `json:"lastName" form:"lastName" binding:"required"`
	Email         string `json:"email" form:"email" binding:"required"`
	CountryRegion string `json:"countryRegion" form:"countryRegion"`
}

// LeadService captures inquiry and subscription form submissions: persist
// first, then notify. A failed notification email never fails the submission.
type LeadService struct {
	repo         leads.Repository
	emailService email.Service
	notifyEmail  string
	logger       *logging.ChanneledLogger
	perfTracker  *performance.Tracker
}

// NewLeadService creates a lead capture service. emailService may be nil when
// no email provider is configured; submissions are then persisted silently.
func NewLeadService(repo leads.Repository, emailService email.Service, notifyEmail string, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *LeadService {
	return &LeadService{
		repo:         repo,
		emailService: emailService,
		notifyEmail:  notifyEmail,
		logger:       logger,
		perfTracker:  perfTracker,
	}
}

func validEmail(address string) bool {
	at := strings.Index(address, "@")
	return at > 0 && strings.Contains(address[at+1:], ".")
}

// SubmitInquiry validates, persists, and dispatches notification for one inquiry.
func (s *LeadService) SubmitInquiry(req *InquiryRequest) (*leads.Inquiry, error) {
	marker := s.perfTracker.StartOperation("leads:submit_inquiry")
	defer marker.Complete()

	if !validEmail(req.Email) {
		return nil, fmt.Errorf("invalid email address")
	}

	inquiry := &leads.Inquiry{
		ID:            security.GenerateULID(),
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		CountryRegion: strings.TrimSpace(req.CountryRegion),
		Enquiry:       strings.TrimSpace(req.Enquiry),
		Subscribe:     req.Subscribe,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.StoreInquiry(inquiry); err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to store inquiry: %w", err)
	}

	// Opt-in on the inquiry form doubles as a subscription.
	if inquiry.Subscribe {
		subscriber := &leads.Subscriber{
			ID:            security.GenerateULID(),
			FirstName:     inquiry.FirstName,
			LastName:      inquiry.LastName,
			Email:         inquiry.Email,
			CountryRegion: inquiry.CountryRegion,
			CreatedAt:     inquiry.CreatedAt,
		}
		if err := s.repo.StoreSubscriber(subscriber); err != nil {
			s.logger.Leads().Error("Failed to store opt-in subscriber", "inquiryId", inquiry.ID, "error", err.Error())
		}
	}

	if s.emailService != nil && s.notifyEmail != "" {
		if err := s.emailService.SendInquiryNotification(s.notifyEmail, inquiry); err != nil {
			s.logger.Leads().Error("Failed to send inquiry notification", "inquiryId", inquiry.ID, "error", err.Error())
		}
	}

	s.logger.Leads().Info("Inquiry captured", "inquiryId", inquiry.ID, "subscribe", inquiry.Subscribe)
	marker.SetSuccess(true)
	return inquiry, nil
}

// Subscribe validates and persists one email subscription.
func (s *LeadService) Subscribe(req *SubscriptionRequest) (*leads.Subscriber, error) {
	marker := s.perfTracker.StartOperation("leads:subscribe")
	defer marker.Complete()

	if !validEmail(req.Email) {
		return nil, fmt.Errorf("invalid email address")
	}

	subscriber := &leads.Subscriber{
		ID:            security.GenerateULID(),
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         strings.TrimSpace(req.Email),
		CountryRegion: strings.TrimSpace(req.CountryRegion),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.StoreSubscriber(subscriber); err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to store subscriber: %w", err)
	}

	if s.emailService != nil {
		if err := s.emailService.SendSubscriptionWelcome(subscriber); err != nil {
			s.logger.Leads().Error("Failed to send subscription welcome", "subscriberId", subscriber.ID, "error", err.Error())
		}
	}

	s.logger.Leads().Info("Subscriber captured", "subscriberId", subscriber.ID)
	marker.SetSuccess(true)
	return subscriber, nil
}
