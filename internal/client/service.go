package client

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// DefaultFollowUpDays is how far out next_follow lands when a new client
// is created without one.
const DefaultFollowUpDays = 14

// Service provides client registry business logic.
type Service struct {
	store Store
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used to decide "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a client service on top of store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current calendar day according to the service clock.
func (s *Service) Today() Date {
	return DateOf(s.now())
}

// Create stores a new client. first_contact is today; next_follow is the
// supplied date or today plus DefaultFollowUpDays.
func (s *Service) Create(ctx context.Context, in Input) (*Client, error) {
	if err := validateName(in.Name); err != nil {
		return nil, err
	}

	today := s.Today()
	next := today.AddDays(DefaultFollowUpDays)
	if strings.TrimSpace(in.NextFollow) != "" {
		parsed, err := ParseDate(in.NextFollow)
		if err != nil {
			return nil, fmt.Errorf("next follow-up: %w", err)
		}
		next = parsed
	}

	c := &Client{
		Name:            in.Name,
		HouseAddress:    in.HouseAddress,
		RegisterAddress: in.RegisterAddress,
		FirstContact:    today,
		NextFollow:      next,
		Notes:           in.Notes,
	}

	saved, err := s.store.Insert(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("saving client: %w", err)
	}
	return saved, nil
}

// Update edits an existing client. A blank next_follow keeps the stored
// value. Returns ErrNotFound when id does not exist.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*Client, error) {
	if err := validateName(in.Name); err != nil {
		return nil, err
	}

	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = in.Name
	c.HouseAddress = in.HouseAddress
	c.RegisterAddress = in.RegisterAddress
	c.Notes = in.Notes

	if strings.TrimSpace(in.NextFollow) != "" {
		next, err := ParseDate(in.NextFollow)
		if err != nil {
			return nil, fmt.Errorf("next follow-up: %w", err)
		}
		c.NextFollow = next
	}

	if err := s.store.Update(ctx, c); err != nil {
		return nil, err
	}

	return s.store.GetByID(ctx, id)
}

// Delete removes a client. Returns ErrNotFound when id does not exist;
// callers that want delete to be idempotent can ignore it.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// Get returns a single client.
func (s *Service) Get(ctx context.Context, id int64) (*Client, error) {
	return s.store.GetByID(ctx, id)
}

// List returns the clients matching q together with the number of
// clients due today across the whole table.
func (s *Service) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	today := s.Today()
	opts := ListOptions{Search: strings.TrimSpace(q.Search)}
	if q.TodayOnly {
		opts.FollowUp = today
	}

	clients, err := s.store.List(ctx, opts)
	if err != nil {
		return nil, err
	}

	count, err := s.store.CountFollowUps(ctx, today)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Clients:    clients,
		Search:     opts.Search,
		TodayOnly:  q.TodayOnly,
		Today:      today,
		TodayCount: count,
	}, nil
}

// All returns every client, unfiltered, for export.
func (s *Service) All(ctx context.Context) ([]*Client, error) {
	return s.store.List(ctx, ListOptions{})
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return nil
}
