// Package leads defines the lead capture domain entities for the inquiry
// and email-subscription forms.
package leads

import "time"

// Inquiry is one submitted inquiry form.
type Inquiry struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	CountryRegion string    `json:"countryRegion,omitempty"`
	Enquiry       string    `json:"enquiry"`
	Subscribe     bool      `json:"subscribe"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Subscriber is one submitted email-subscription form.
type Subscriber struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	CountryRegion string    `json:"countryRegion,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Repository persists captured leads.
type Repository interface {
	StoreInquiry(inquiry *Inquiry) error
	StoreSubscriber(subscriber *Subscriber) error
	FindSubscriberByEmail(email string) (*Subscriber, error)
}
