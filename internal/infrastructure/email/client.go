// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"
	"os"

	"github.com/BaillieLodges/beckons-go/internal/domain/entities/leads"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/email/templates"
	"github.com/resendlabs/resend-go"
)

// Service defines the interface for sending emails, allowing for mock implementations in tests.
type Service interface {
	SendInquiryNotification(toEmail string, inquiry *leads.Inquiry) error
	SendSubscriptionWelcome(subscriber *leads.Subscriber) error
}

// ResendClient is the concrete implementation of the email Service using the Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
}

// NewService creates a new email service client, returning the Service interface.
func NewService() (Service, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	fromEmail := os.Getenv("EMAIL_FROM")
	if fromEmail == "" {
		fromEmail = "noreply@beckons.travel" // Default from address
	}

	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Beckons" // Default from name
	}

	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}, nil
}

// SendInquiryNotification composes and sends the operator notification for a new inquiry.
func (c *ResendClient) SendInquiryNotification(toEmail string, inquiry *leads.Inquiry) error {
	subject := fmt.Sprintf("New inquiry from %s %s", inquiry.FirstName, inquiry.LastName)

	content := templates.GetInquiryNotificationContent(templates.InquiryNotificationProps{
		FirstName:     inquiry.FirstName,
		LastName:      inquiry.LastName,
		Email:         inquiry.Email,
		Phone:         inquiry.Phone,
		CountryRegion: inquiry.CountryRegion,
		Enquiry:       inquiry.Enquiry,
		Subscribed:    inquiry.Subscribe,
	})

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: subject,
		Content:   content,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send inquiry notification via Resend: %w", err)
	}

	return nil
}

// SendSubscriptionWelcome composes and sends the welcome email to a new subscriber.
func (c *ResendClient) SendSubscriptionWelcome(subscriber *leads.Subscriber) error {
	content := templates.GetSubscriptionWelcomeContent(templates.SubscriptionWelcomeProps{
		FirstName: subscriber.FirstName,
	})

	htmlContent := templates.GetEmailLayout(templates.EmailLayoutProps{
		Preheader: "Welcome to Beckons",
		Content:   content,
	})

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{subscriber.Email},
		Subject: "Welcome to Beckons",
		Html:    htmlContent,
	}

	_, err := c.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send subscription welcome via Resend: %w", err)
	}

	return nil
}
