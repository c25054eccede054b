package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/healthcare-blog/internal/api/dto"
	"github.com/spec-kit/healthcare-blog/internal/domain"
	"github.com/spec-kit/healthcare-blog/internal/service"
	apperrors "github.com/spec-kit/healthcare-blog/pkg/util"
)

// PostsHandler manages blog post endpoints.
type PostsHandler struct {
	service *service.PostService
}

// NewPostsHandler constructs handler.
func NewPostsHandler(postService *service.PostService) *PostsHandler {
	return &PostsHandler{service: postService}
}

// Create POST /posts.
func (h *PostsHandler) Create(c *fiber.Ctx) error {
	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	post, err := h.service.Create(c.Context(), req.Title, req.Content, req.Author)
	if err != nil {
		return err
	}
	return c.JSON(postResponse(post))
}

// List GET /posts.
func (h *PostsHandler) List(c *fiber.Ctx) error {
	limit := parseQueryInt(c.Query("limit"))
	offset := parseQueryInt(c.Query("offset"))

	page, err := h.service.List(c.Context(), limit, offset)
	if err != nil {
		return err
	}

	posts := make([]dto.PostResponse, 0, len(page.Posts))
	for i := range page.Posts {
		posts = append(posts, postResponse(&page.Posts[i]))
	}
	return c.JSON(dto.PostListResponse{
		Posts: posts,
		Pagination: dto.Pagination{
			Total:   page.Total,
			Limit:   page.Limit,
			Offset:  page.Offset,
			HasMore: page.HasMore,
		},
	})
}

// GetByID GET /posts/:id.
func (h *PostsHandler) GetByID(c *fiber.Ctx) error {
	post, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(postResponse(post))
}

// Update PUT /posts/:id.
func (h *PostsHandler) Update(c *fiber.Ctx) error {
	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}

	post, err := h.service.Update(c.Context(), c.Params("id"), req.Title, req.Content, req.Author)
	if err != nil {
		return err
	}
	return c.JSON(postResponse(post))
}

// Delete DELETE /posts/:id.
func (h *PostsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"msg": "Post deleted"})
}

// parseQueryInt returns 0 for absent or non-numeric values so the service
// applies its defaults.
func parseQueryInt(val string) int {
	if val == "" {
		return 0
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}

func postResponse(post *domain.Post) dto.PostResponse {
	return dto.PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Author:    post.Author,
		CreatedAt: post.CreatedAt,
	}
}
