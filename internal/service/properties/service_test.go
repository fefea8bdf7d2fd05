package properties

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealEstateService/internal/domain"
	propertyRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/property"
	"github.com/m04kA/SMC-RealEstateService/internal/service/properties/models"
	"github.com/m04kA/SMC-RealEstateService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	items   map[int64]*domain.Property
	nextID  int64
	gets    int
	listErr error

	// afterGet срабатывает между чтением строки и возвратом из GetByID
	afterGet func()
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[int64]*domain.Property{}}
}

func (f *fakeRepo) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	f.nextID++
	p.ID = f.nextID
	f.items[p.ID] = p.Clone()
	return p, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Property, error) {
	f.gets++
	p, ok := f.items[id]
	if !ok {
		return nil, propertyRepo.ErrPropertyNotFound
	}
	read := p.Clone()
	if hook := f.afterGet; hook != nil {
		f.afterGet = nil
		hook()
	}
	return read, nil
}

func (f *fakeRepo) List(_ context.Context, _ domain.PropertyFilter) ([]*domain.Property, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Property, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p.Clone())
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, p *domain.Property) (*domain.Property, error) {
	if _, ok := f.items[p.ID]; !ok {
		return nil, propertyRepo.ErrPropertyNotFound
	}
	f.items[p.ID] = p.Clone()
	return p, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return propertyRepo.ErrPropertyNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeCache struct {
	items   map[int64]*domain.Property
	deleted []int64
}

func (c *fakeCache) Get(id int64) (*domain.Property, bool) {
	p, ok := c.items[id]
	return p, ok
}

func (c *fakeCache) Set(p *domain.Property) {
	if c.items == nil {
		c.items = map[int64]*domain.Property{}
	}
	c.items[p.ID] = p
}

func (c *fakeCache) Delete(id int64) {
	delete(c.items, id)
	c.deleted = append(c.deleted, id)
}

type fakePublisher struct {
	events []domain.PropertyEvent
	err    error
}

func (p *fakePublisher) PublishPropertyEvent(_ context.Context, evt domain.PropertyEvent) error {
	p.events = append(p.events, evt)
	return p.err
}

type fakeTx struct {
	calls int
}

func (t *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type fixture struct {
	svc       *Service
	repo      *fakeRepo
	cache     *fakeCache
	publisher *fakePublisher
	tx        *fakeTx
}

func newFixture() *fixture {
	f := &fixture{
		repo:      newFakeRepo(),
		cache:     &fakeCache{},
		publisher: &fakePublisher{},
		tx:        &fakeTx{},
	}
	f.svc = NewService(f.repo, f.cache, f.publisher, f.tx, nopLogger{})
	f.svc.now = func() time.Time { return time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC) }
	return f
}

func validRequest() *models.PropertyRequest {
	return &models.PropertyRequest{
		Title:         "Sea view flat",
		Description:   "Two rooms by the beach",
		Price:         decimal.RequireFromString("120.50"),
		Location:      "Lagos",
		Bedrooms:      2,
		Bathrooms:     1,
		Area:          decimal.RequireFromString("64"),
		IsFeatured:    ptr.Ptr(true),
		GalleryImages: []string{"/img/1.jpg", "/img/2.jpg"},
	}
}

func TestCreate(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "120.50", resp.Price)
	assert.Equal(t, "64.00", resp.Area)
	assert.True(t, resp.IsFeatured)
	assert.True(t, resp.IsAvailable)
	assert.Equal(t, []string{"/img/1.jpg", "/img/2.jpg"}, resp.GalleryImages)
	assert.Equal(t, 1, f.tx.calls)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, domain.PropertyCreated, f.publisher.events[0].Action)
	assert.Equal(t, int64(1), f.publisher.events[0].PropertyID)
}

func TestCreate_Validation(t *testing.T) {
	cases := map[string]func(r *models.PropertyRequest){
		"missing title":     func(r *models.PropertyRequest) { r.Title = "  " },
		"missing location":  func(r *models.PropertyRequest) { r.Location = "" },
		"zero price":        func(r *models.PropertyRequest) { r.Price = decimal.Zero },
		"negative price":    func(r *models.PropertyRequest) { r.Price = decimal.NewFromInt(-1) },
		"negative bedrooms": func(r *models.PropertyRequest) { r.Bedrooms = -1 },
		"negative area":     func(r *models.PropertyRequest) { r.Area = decimal.NewFromInt(-5) },
		"empty image":       func(r *models.PropertyRequest) { r.GalleryImages = []string{""} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			mutate(req)

			_, err := f.svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, f.publisher.events)
		})
	}
}

func TestCreate_PublishFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture()
	f.publisher.err = errors.New("broker down")

	_, err := f.svc.Create(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestGet_UsesCache(t *testing.T) {
	f := newFixture()
	created, err := f.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = f.svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	_, err = f.svc.Get(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, f.repo.gets)
}

func TestGet_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestUpdate_InvalidatesCache(t *testing.T) {
	f := newFixture()
	created, err := f.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	_, err = f.svc.Get(context.Background(), created.ID)
	require.NoError(t, err)

	req := validRequest()
	req.Title = "Renovated flat"
	req.GalleryImages = []string{"/img/new.jpg"}
	updated, err := f.svc.Update(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Renovated flat", updated.Title)
	assert.Equal(t, []string{"/img/new.jpg"}, updated.GalleryImages)
	assert.Contains(t, f.cache.deleted, created.ID)

	got, err := f.svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renovated flat", got.Title)

	assert.Equal(t, domain.PropertyUpdated, f.publisher.events[len(f.publisher.events)-1].Action)
}

func TestGet_ConcurrentUpdateDoesNotCacheStaleRow(t *testing.T) {
	f := newFixture()
	created, err := f.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Title = "Renovated flat"
	f.repo.afterGet = func() {
		_, err := f.svc.Update(context.Background(), created.ID, req)
		require.NoError(t, err)
	}

	stale, err := f.svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sea view flat", stale.Title)

	_, cached := f.cache.Get(created.ID)
	assert.False(t, cached)

	got, err := f.svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renovated flat", got.Title)
	assert.Equal(t, 2, f.repo.gets)
}

func TestUpdate_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Update(context.Background(), 9, validRequest())
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.Empty(t, f.publisher.events)
}

func TestDelete(t *testing.T) {
	f := newFixture()
	created, err := f.svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), created.ID))
	assert.Contains(t, f.cache.deleted, created.ID)
	assert.Equal(t, domain.PropertyDeleted, f.publisher.events[len(f.publisher.events)-1].Action)

	err = f.svc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestList_RepositoryError(t *testing.T) {
	f := newFixture()
	f.repo.listErr = errors.New("boom")

	_, err := f.svc.List(context.Background(), domain.PropertyFilter{})
	assert.ErrorIs(t, err, ErrInternal)
}
