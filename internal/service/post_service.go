package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/healthcare-blog/internal/cache"
	"github.com/spec-kit/healthcare-blog/internal/config"
	"github.com/spec-kit/healthcare-blog/internal/domain"
	"github.com/spec-kit/healthcare-blog/internal/events"
	"github.com/spec-kit/healthcare-blog/internal/repository"
	apperrors "github.com/spec-kit/healthcare-blog/pkg/util"
)

// PostPage is one page of the post listing, newest first.
type PostPage struct {
	Posts   []domain.Post
	Total   int
	Limit   int
	Offset  int
	HasMore bool
}

// PostService implements the blog post CRUD contract.
type PostService struct {
	posts      repository.PostRepository
	cache      cache.PostCache
	dispatcher events.Dispatcher
	defaults   config.PostsConfig
}

// PostDependencies encapsulates requirements for the post service. Cache
// and dispatcher may be nil.
type PostDependencies struct {
	PostRepo   repository.PostRepository
	Cache      cache.PostCache
	Dispatcher events.Dispatcher
}

// NewPostService builds the service.
func NewPostService(cfg config.PostsConfig, deps PostDependencies) *PostService {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}
	return &PostService{
		posts:      deps.PostRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		defaults:   cfg,
	}
}

// Create validates the three required fields, assigns an id and persists
// the post.
func (s *PostService) Create(ctx context.Context, title, content, author string) (*domain.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	author = strings.TrimSpace(author)
	if title == "" || content == "" || author == "" {
		return nil, apperrors.NewValidationError("Please include all fields")
	}

	post := &domain.Post{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
		Author:  author,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, post)
	}
	s.publish(ctx, events.EventPostCreated, post)
	return post, nil
}

// List returns one page of posts ordered by creation time descending.
// Non-positive limits fall back to the default page size and the
// configured maximum is enforced regardless of what the client asked for.
func (s *PostService) List(ctx context.Context, limit, offset int) (*PostPage, error) {
	if limit <= 0 {
		limit = s.defaults.DefaultPageSize
	}
	if limit > s.defaults.MaxPageSize {
		limit = s.defaults.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := s.posts.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	total, err := s.posts.Count(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	return &PostPage{
		Posts:   posts,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+limit < total,
	}, nil
}

// GetByID fetches a single post, trying the cache first.
func (s *PostService) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	if s.cache != nil {
		if post, ok := s.cache.Get(ctx, id); ok {
			return post, nil
		}
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Post")
		}
		return nil, apperrors.NewInternalError(err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, post)
	}
	return post, nil
}

// Update replaces the three mutable fields of an existing post. All three
// are required: a partial body is rejected instead of silently blanking
// the omitted fields. Id and creation timestamp never change.
func (s *PostService) Update(ctx context.Context, id, title, content, author string) (*domain.Post, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	author = strings.TrimSpace(author)
	if title == "" || content == "" || author == "" {
		return nil, apperrors.NewValidationError("Please include all fields")
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Post")
		}
		return nil, apperrors.NewInternalError(err)
	}

	post.Title = title
	post.Content = content
	post.Author = author
	if err := s.posts.Update(ctx, post); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("Post")
		}
		return nil, apperrors.NewInternalError(err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.publish(ctx, events.EventPostUpdated, post)
	return post, nil
}

// Delete removes a post. Deleting an already-deleted id yields NotFound.
func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("Post")
		}
		return apperrors.NewInternalError(err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.publish(ctx, events.EventPostDeleted, &domain.Post{ID: id})
	return nil
}

func (s *PostService) publish(ctx context.Context, eventType events.EventType, post *domain.Post) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload: events.PostEventPayload{
			PostID: post.ID,
			Title:  post.Title,
			Author: post.Author,
		},
	})
}
