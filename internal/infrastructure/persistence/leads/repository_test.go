package leads

import (
	"testing"
	"time"

	"github.com/BaillieLodges/beckons-go/internal/domain/entities/leads"
	"github.com/BaillieLodges/beckons-go/internal/infrastructure/persistence/database"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewConnection("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewRepository(db)
	require.NoError(t, err)
	return repo
}

func TestStoreInquiry(t *testing.T) {
	assert := require.New(t)
	repo := setupRepo(t)

	inquiry := &leads.Inquiry{
		ID:            "01HTEST0000000000000000001",
		FirstName:     "Alex",
		LastName:      "Reid",
		Email:         "alex@example.com",
		Phone:         "+61 400 000 000",
		CountryRegion: "Australia",
		Enquiry:       "Availability in October?",
		Subscribe:     true,
		CreatedAt:     time.Now().UTC(),
	}
	assert.NoError(repo.StoreInquiry(inquiry))

	// Duplicate id violates the primary key.
	assert.Error(repo.StoreInquiry(inquiry))
}

func TestStoreSubscriberAndFind(t *testing.T) {
	assert := require.New(t)
	repo := setupRepo(t)

	subscriber := &leads.Subscriber{
		ID:            "01HTEST0000000000000000002",
		FirstName:     "Alex",
		LastName:      "Reid",
		Email:         "alex@example.com",
		CountryRegion: "Australia",
		CreatedAt:     time.Now().UTC(),
	}
	assert.NoError(repo.StoreSubscriber(subscriber))

	found, err := repo.FindSubscriberByEmail("alex@example.com")
	assert.NoError(err)
	assert.NotNil(found)
	assert.Equal(subscriber.ID, found.ID)
	assert.Equal("Australia", found.CountryRegion)
}

func TestFindSubscriberByEmailAbsent(t *testing.T) {
	assert := require.New(t)
	repo := setupRepo(t)

	found, err := repo.FindSubscriberByEmail("nobody@example.com")
	assert.NoError(err)
	assert.Nil(found)
}

func TestResubscribeUpdatesInPlace(t *testing.T) {
	assert := require.New(t)
	repo := setupRepo(t)

	first := &leads.Subscriber{
		ID:        "01HTEST0000000000000000003",
		FirstName: "Alex",
		LastName:  "Reid",
		Email:     "alex@example.com",
		CreatedAt: time.Now().UTC(),
	}
	assert.NoError(repo.StoreSubscriber(first))

	second := &leads.Subscriber{
		ID:            "01HTEST0000000000000000004",
		FirstName:     "Alexandra",
		LastName:      "Reid",
		Email:         "alex@example.com",
		CountryRegion: "New Zealand",
		CreatedAt:     time.Now().UTC(),
	}
	assert.NoError(repo.StoreSubscriber(second), "re-subscribing the same email is not an error")

	found, err := repo.FindSubscriberByEmail("alex@example.com")
	assert.NoError(err)
	assert.Equal(first.ID, found.ID, "original record id is kept")
	assert.Equal("Alexandra", found.FirstName)
	assert.Equal("New Zealand", found.CountryRegion)
}
