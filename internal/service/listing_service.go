package service

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"

	"internconnect/internal/domain"
	"internconnect/internal/store"
)

// ListingsKey is the storage key of the listings collection.
const ListingsKey = "internconnect_jobs_v2"

var (
	// ErrUnauthorized indicates a mutating call arrived without a token.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrNotFound indicates no listing matches the requested id.
	ErrNotFound = errors.New("job not found")
)

// ListingService provides CRUD over internship listings. Mutating
// operations require a token but only check that one is present: any
// non-empty token passes, and createdBy is recorded without ever being
// enforced against the acting identity.
type ListingService interface {
	List(ctx context.Context) ([]domain.Listing, error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	Create(ctx context.Context, draft domain.Listing, sessionToken string) (*domain.Listing, error)
	Update(ctx context.Context, id string, patch domain.ListingPatch, sessionToken string) (*domain.Listing, error)
	Delete(ctx context.Context, id, sessionToken string) error
}

type listingService struct {
	listings *store.Collection[domain.Listing]
	latency  time.Duration
}

func NewListingService(kv store.KV, latency time.Duration) ListingService {
	return &listingService{
		listings: store.NewCollection[domain.Listing](kv, ListingsKey),
		latency:  latency,
	}
}

// List returns the full listing set, seeding the collection on first read.
func (s *listingService) List(ctx context.Context) ([]domain.Listing, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	return s.listings.Read(ctx, domain.SeedListings())
}

func (s *listingService) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}
	listings, err := s.listings.Read(ctx, domain.SeedListings())
	if err != nil {
		return nil, err
	}
	for i := range listings {
		if listings[i].ID == id {
			return &listings[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create publishes a new listing: generates the id, stamps createdAt,
// defaults the company logo when absent, and prepends so the list stays
// newest-first.
func (s *listingService) Create(ctx context.Context, draft domain.Listing, sessionToken string) (*domain.Listing, error) {
	if sessionToken == "" {
		return nil, ErrUnauthorized
	}
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	listings, err := s.listings.Read(ctx, domain.SeedListings())
	if err != nil {
		return nil, err
	}

	draft.ID = uuid.NewString()
	draft.CreatedAt = time.Now().UTC()
	if draft.CompanyLogo == "" {
		draft.CompanyLogo = defaultLogoURL(draft.CompanyName)
	}

	listings = append([]domain.Listing{draft}, listings...)
	if err := s.listings.Write(ctx, listings); err != nil {
		return nil, err
	}
	return &draft, nil
}

// Update shallow-merges the patch over the stored listing: fields absent
// from the patch keep their current value.
func (s *listingService) Update(ctx context.Context, id string, patch domain.ListingPatch, sessionToken string) (*domain.Listing, error) {
	if sessionToken == "" {
		return nil, ErrUnauthorized
	}
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	listings, err := s.listings.Read(ctx, domain.SeedListings())
	if err != nil {
		return nil, err
	}

	for i := range listings {
		if listings[i].ID != id {
			continue
		}
		patch.ApplyTo(&listings[i])
		if err := s.listings.Write(ctx, listings); err != nil {
			return nil, err
		}
		updated := listings[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

// Delete removes the listing if present. Filtering a non-matching id is a
// no-op, so deleting an already-absent listing still succeeds.
func (s *listingService) Delete(ctx context.Context, id, sessionToken string) error {
	if sessionToken == "" {
		return ErrUnauthorized
	}
	if err := simulateLatency(ctx, s.latency); err != nil {
		return err
	}

	listings, err := s.listings.Read(ctx, domain.SeedListings())
	if err != nil {
		return err
	}

	kept := listings[:0]
	for _, l := range listings {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	return s.listings.Write(ctx, kept)
}

func defaultLogoURL(companyName string) string {
	return "https://picsum.photos/seed/" + url.PathEscape(companyName) + "/100/100"
}
