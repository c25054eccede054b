package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/healthcare-blog/internal/config"
	"github.com/spec-kit/healthcare-blog/internal/domain"
	"github.com/spec-kit/healthcare-blog/internal/events"
	apperrors "github.com/spec-kit/healthcare-blog/pkg/util"
)

// -------- test fakes --------

type fakePostRepo struct {
	mu    sync.Mutex
	seq   int
	posts map[string]domain.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]domain.Post)}
}

func (f *fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	post.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Second)
	f.posts[post.ID] = *post
	return nil
}

func (f *fakePostRepo) Update(_ context.Context, post *domain.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[post.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.posts[post.ID] = *post
	return nil
}

func (f *fakePostRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.posts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id string) (*domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.posts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &post, nil
}

func (f *fakePostRepo) List(_ context.Context, limit, offset int) ([]domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]domain.Post, 0, len(f.posts))
	for _, post := range f.posts {
		all = append(all, post)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	if offset >= len(all) {
		return []domain.Post{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakePostRepo) Count(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.posts), nil
}

type fakePostCache struct {
	mu          sync.Mutex
	entries     map[string]domain.Post
	invalidated []string
}

func newFakePostCache() *fakePostCache {
	return &fakePostCache{entries: make(map[string]domain.Post)}
}

func (f *fakePostCache) Get(_ context.Context, id string) (*domain.Post, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	post, ok := f.entries[id]
	if !ok {
		return nil, false
	}
	return &post, true
}

func (f *fakePostCache) Set(_ context.Context, post *domain.Post) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[post.ID] = *post
}

func (f *fakePostCache) Invalidate(_ context.Context, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, id)
	f.invalidated = append(f.invalidated, id)
}

type fakeDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *fakeDispatcher) Publish(_ context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *fakeDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (f *fakeDispatcher) types() []events.EventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]events.EventType, 0, len(f.events))
	for _, e := range f.events {
		types = append(types, e.Type)
	}
	return types
}

// -------- helpers --------

func newPostService(repo *fakePostRepo) *PostService {
	return NewPostService(
		config.PostsConfig{DefaultPageSize: 10, MaxPageSize: 100},
		PostDependencies{PostRepo: repo},
	)
}

func requireDomainError(t *testing.T, err error, code string, status int) {
	t.Helper()
	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr), "expected DomainError, got %v", err)
	require.Equal(t, code, domainErr.Code)
	require.Equal(t, status, domainErr.HTTPStatus)
}

// -------- tests --------

func TestCreateGetRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newPostService(newFakePostRepo())

	created, err := svc.Create(context.Background(), "T", "C", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "T", got.Title)
	require.Equal(t, "C", got.Content)
	require.Equal(t, "alice", got.Author)
}

func TestCreate_MissingField(t *testing.T) {
	t.Parallel()

	repo := newFakePostRepo()
	svc := newPostService(repo)

	_, err := svc.Create(context.Background(), "T", "C", "")
	requireDomainError(t, err, "VALIDATION_FAILED", 400)

	total, _ := repo.Count(context.Background())
	require.Zero(t, total, "no record may be created on validation failure")
}

func TestGetByID_NotFound(t *testing.T) {
	t.Parallel()

	svc := newPostService(newFakePostRepo())

	_, err := svc.GetByID(context.Background(), "missing")
	requireDomainError(t, err, "NOT_FOUND", 404)
}

func TestList_PaginationAndOrdering(t *testing.T) {
	t.Parallel()

	svc := newPostService(newFakePostRepo())
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		_, err := svc.Create(context.Background(), title, "content", "author")
		require.NoError(t, err)
	}

	page, err := svc.List(context.Background(), 2, 0)
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	require.Equal(t, 5, page.Total)
	require.True(t, page.HasMore)
	require.Equal(t, "e", page.Posts[0].Title, "newest post first")
	require.Equal(t, "d", page.Posts[1].Title)
	require.True(t, page.Posts[0].CreatedAt.After(page.Posts[1].CreatedAt))

	last, err := svc.List(context.Background(), 2, 4)
	require.NoError(t, err)
	require.Len(t, last.Posts, 1)
	require.False(t, last.HasMore, "offset+limit >= total")

	boundary, err := svc.List(context.Background(), 5, 0)
	require.NoError(t, err)
	require.False(t, boundary.HasMore, "hasMore must be false when offset+limit == total")
}

func TestList_DefaultsAndCap(t *testing.T) {
	t.Parallel()

	svc := NewPostService(
		config.PostsConfig{DefaultPageSize: 10, MaxPageSize: 3},
		PostDependencies{PostRepo: newFakePostRepo()},
	)

	page, err := svc.List(context.Background(), 0, -5)
	require.NoError(t, err)
	require.Equal(t, 10, page.Limit, "non-positive limit falls back to default")
	require.Equal(t, 0, page.Offset)

	capped, err := svc.List(context.Background(), 50, 0)
	require.NoError(t, err)
	require.Equal(t, 3, capped.Limit, "server-side cap applies")
}

func TestUpdate_NotFoundNoUpsert(t *testing.T) {
	t.Parallel()

	repo := newFakePostRepo()
	svc := newPostService(repo)

	_, err := svc.Update(context.Background(), "missing", "T", "C", "A")
	requireDomainError(t, err, "NOT_FOUND", 404)

	total, _ := repo.Count(context.Background())
	require.Zero(t, total, "update must not create a record")
}

func TestUpdate_ReplacesFieldsKeepsIdentity(t *testing.T) {
	t.Parallel()

	svc := newPostService(newFakePostRepo())
	created, err := svc.Create(context.Background(), "T", "C", "alice")
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, "T2", "C2", "bob")
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.Equal(t, "T2", updated.Title)
	require.Equal(t, "bob", updated.Author)

	_, err = svc.Update(context.Background(), created.ID, "T3", "", "bob")
	requireDomainError(t, err, "VALIDATION_FAILED", 400)
}

func TestDelete_SecondCallNotFound(t *testing.T) {
	t.Parallel()

	svc := newPostService(newFakePostRepo())
	created, err := svc.Create(context.Background(), "T", "C", "alice")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	err = svc.Delete(context.Background(), created.ID)
	requireDomainError(t, err, "NOT_FOUND", 404)
}

func TestCacheAndEvents(t *testing.T) {
	t.Parallel()

	repo := newFakePostRepo()
	postCache := newFakePostCache()
	dispatcher := &fakeDispatcher{}
	svc := NewPostService(
		config.PostsConfig{DefaultPageSize: 10, MaxPageSize: 100},
		PostDependencies{PostRepo: repo, Cache: postCache, Dispatcher: dispatcher},
	)

	created, err := svc.Create(context.Background(), "T", "C", "alice")
	require.NoError(t, err)
	_, cached := postCache.Get(context.Background(), created.ID)
	require.True(t, cached, "create primes the cache")

	_, err = svc.Update(context.Background(), created.ID, "T2", "C2", "alice")
	require.NoError(t, err)
	require.Contains(t, postCache.invalidated, created.ID)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.Equal(t, []events.EventType{
		events.EventPostCreated,
		events.EventPostUpdated,
		events.EventPostDeleted,
	}, dispatcher.types())
}
