package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nailsbynatalia/booking-service/internal/domain"
	storage "github.com/nailsbynatalia/booking-service/internal/infra/storage/service"
	"github.com/nailsbynatalia/booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeServiceRepo struct {
	services map[uuid.UUID]*domain.Service
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[uuid.UUID]*domain.Service{}}
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, storage.ErrServiceNotFound
	}
	copied := *svc
	return &copied, nil
}

func (r *fakeServiceRepo) ListActive(_ context.Context, category *domain.ServiceCategory) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0)
	for _, svc := range r.services {
		if !svc.IsActive {
			continue
		}
		if category != nil && svc.Category != *category {
			continue
		}
		copied := *svc
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	created := *svc
	created.ID = uuid.New()
	r.services[created.ID] = &created
	return &created, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, svc *domain.Service) error {
	if _, ok := r.services[svc.ID]; !ok {
		return storage.ErrServiceNotFound
	}
	copied := *svc
	r.services[svc.ID] = &copied
	return nil
}

func validInput() ServiceInput {
	return ServiceInput{
		Category:    domain.CategoryNails,
		Name:        "Gel Manicure",
		Description: ptr.Ptr("Full set with gel polish"),
		DurationMin: 60,
		PriceCents:  6500,
		IsActive:    true,
	}
}

func TestCreateAndGet(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := New(repo, nopLogger{})

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	loaded, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gel Manicure", loaded.Name)

	_, err = svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreate_Validation(t *testing.T) {
	svc := New(newFakeServiceRepo(), nopLogger{})

	tests := []struct {
		name   string
		mutate func(in *ServiceInput)
	}{
		{"unknown category", func(in *ServiceInput) { in.Category = "haircuts" }},
		{"empty name", func(in *ServiceInput) { in.Name = "  " }},
		{"zero duration", func(in *ServiceInput) { in.DurationMin = 0 }},
		{"negative price", func(in *ServiceInput) { in.PriceCents = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestListActive_FiltersInactiveAndCategory(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := New(repo, nopLogger{})

	active, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	sitter := validInput()
	sitter.Category = domain.CategoryBabysitting
	sitter.Name = "Evening Sitting"
	_, err = svc.Create(context.Background(), sitter)
	require.NoError(t, err)

	retired := validInput()
	retired.IsActive = false
	_, err = svc.Create(context.Background(), retired)
	require.NoError(t, err)

	all, err := svc.ListActive(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	nails := domain.CategoryNails
	filtered, err := svc.ListActive(context.Background(), &nails)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, active.ID, filtered[0].ID)

	bad := domain.ServiceCategory("haircuts")
	_, err = svc.ListActive(context.Background(), &bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := New(repo, nopLogger{})

	created, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.Name = "Gel Manicure Deluxe"
	in.PriceCents = 8000
	in.IsActive = false

	updated, err := svc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Gel Manicure Deluxe", updated.Name)
	assert.Equal(t, 8000, updated.PriceCents)
	assert.False(t, updated.IsActive)

	_, err = svc.Update(context.Background(), uuid.New(), in)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
