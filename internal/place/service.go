package place

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Service provides listing search and CRUD.
type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() string
}

// NewService creates a new place service.
func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Search returns one page of places matching the query and category,
// newest first, together with the total number of matches.
func (s *Service) Search(ctx context.Context, params SearchParams) (SearchResult, error) {
	filter, err := NewFilter(params.Query, params.Category)
	if err != nil {
		return SearchResult{}, err
	}
	page := NewPage(params.Page, params.Limit)

	var (
		items []Place
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.Find(gctx, filter, page)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return SearchResult{}, err
	}

	if items == nil {
		items = []Place{}
	}
	return SearchResult{Items: items, Pagination: NewPagination(page, total)}, nil
}

// Get returns the place with the given id.
func (s *Service) Get(ctx context.Context, id string) (Place, error) {
	if !validID(id) {
		return Place{}, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// Create validates the input and stores a new place.
func (s *Service) Create(ctx context.Context, in CreateInput) (Place, error) {
	in.normalize()
	if err := in.Validate(); err != nil {
		return Place{}, err
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}

	now := s.timestamp()
	p := Place{
		ID:           s.newID(),
		Name:         in.Name,
		Type:         in.Type,
		Description:  in.Description,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		Website:      in.Website,
		Images:       images,
		Rating:       in.Rating,
		ReviewCount:  in.ReviewCount,
		OpeningHours: in.OpeningHours,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return Place{}, err
	}
	return p, nil
}

// Update merges the supplied fields into an existing place.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (Place, error) {
	patch.normalize()
	if err := patch.Validate(); err != nil {
		return Place{}, err
	}
	if !validID(id) {
		return Place{}, ErrNotFound
	}
	return s.repo.Update(ctx, id, patch, s.timestamp())
}

// Delete removes a place permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// Postgres keeps microseconds; truncating keeps the returned record equal
// to what a later read yields.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
