// Package leads provides the SQL-backed repository for captured form leads.
package leads

import (
	"database/sql"
	"fmt"

	"github.com/BaillieLodges/beckons-go/internal/domain/entities/leads"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/persistence/database"
)

// Repository persists inquiries and subscribers to the local database.
type Repository struct {
	db *database.DB
}

// NewRepository creates a lead repository and ensures its tables exist.
func NewRepository(db *database.DB) (*Repository, error) {
	repo := &Repository{db: db}
	if err := repo.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create lead tables: %w", err)
	}
	return repo, nil
}

func (r *Repository) createTables() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS inquiries (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT,
			country_region TEXT,
			enquiry TEXT NOT NULL,
			subscribe INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS subscribers (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			country_region TEXT,
			created_at DATETIME NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// StoreInquiry inserts one inquiry record.
func (r *Repository) StoreInquiry(inquiry *leads.Inquiry) error {
	_, err := r.db.Exec(
		`INSERT INTO inquiries (id, first_name, last_name, email, phone, country_region, enquiry, subscribe, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inquiry.ID, inquiry.FirstName, inquiry.LastName, inquiry.Email,
		inquiry.Phone, inquiry.CountryRegion, inquiry.Enquiry, inquiry.Subscribe, inquiry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store inquiry %s: %w", inquiry.ID, err)
	}
	return nil
}

// StoreSubscriber inserts one subscriber record. Re-subscribing an existing
// email is treated as success.
func (r *Repository) StoreSubscriber(subscriber *leads.Subscriber) error {
	_, err := r.db.Exec(
		`INSERT INTO subscribers (id, first_name, last_name, email, country_region, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(email) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			country_region = excluded.country_region`,
		subscriber.ID, subscriber.FirstName, subscriber.LastName,
		subscriber.Email, subscriber.CountryRegion, subscriber.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to store subscriber %s: %w", subscriber.ID, err)
	}
	return nil
}

// FindSubscriberByEmail returns the subscriber for an email, or nil when absent.
func (r *Repository) FindSubscriberByEmail(email string) (*leads.Subscriber, error) {
	row := r.db.QueryRow(
		`SELECT id, first_name, last_name, email, country_region, created_at
		 FROM subscribers WHERE email = ?`, email,
	)

	var subscriber leads.Subscriber
	err := row.Scan(&subscriber.ID, &subscriber.FirstName, &subscriber.LastName,
		&subscriber.Email, &subscriber.CountryRegion, &subscriber.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query subscriber: %w", err)
	}

	return &subscriber, nil
}
