package handler

import (
	"net/http"
	"time"

	"linkup/internal/delivery/http/middleware"
	"linkup/internal/delivery/http/response"
	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc usecase.PostUsecase
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase) *PostHandler {
	return &PostHandler{uc: uc}
}

type createPostRequest struct {
	Description string   `json:"description" validate:"required,max=2000"`
	Media       string   `json:"media" validate:"omitempty,max=512"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=50"`
}

type editPostRequest struct {
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Media       *string  `json:"media" validate:"omitempty,max=512"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=50"`
}

type postResponse struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"authorId"`
	Description string    `json:"description"`
	Media       string    `json:"media,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toPostResponse(post *entity.Post) *postResponse {
	return &postResponse{
		ID:          post.ID.String(),
		AuthorID:    post.AuthorID.String(),
		Description: post.Description,
		Media:       post.Media,
		Tags:        post.Tags,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
}

func toPostResponses(posts []*entity.Post) []*postResponse {
	out := make([]*postResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostResponse(post))
	}

	return out
}

// CreatePost handles creation of a post by the authenticated user.
func (h *PostHandler) CreatePost(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.CreatePost(c.Request().Context(), identity.UserID, &usecase.CreatePostInput{
		Description: req.Description,
		Media:       req.Media,
		Tags:        req.Tags,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPostResponse(post), "Post created")
}

// ListPosts handles listing all posts.
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.uc.ListPosts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponses(posts), "Posts retrieved")
}

// ListMyPosts handles listing the authenticated user's posts.
func (h *PostHandler) ListMyPosts(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	posts, err := h.uc.ListPostsByAuthor(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponses(posts), "Posts retrieved")
}

// EditPost handles a partial update of a post owned by the caller.
func (h *PostHandler) EditPost(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post id")
	}

	var req editPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.EditPost(c.Request().Context(), identity.UserID, postID, &usecase.EditPostInput{
		Description: req.Description,
		Media:       req.Media,
		Tags:        req.Tags,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post), "Post updated")
}

// DeletePost handles deletion of a post owned by the caller.
func (h *PostHandler) DeletePost(c echo.Context) error {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post id")
	}

	if err := h.uc.DeletePost(c.Request().Context(), identity.UserID, postID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"}, "Post deleted")
}
