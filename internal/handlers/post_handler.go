package handlers

import (
	"net/http"

	"github.com/christopherece/StoryNest-prj/internal/models"
	"github.com/christopherece/StoryNest-prj/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post-related routes. The post kind is part of
// the URL; it picks the collection and the validation rules.
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts/:kind", h.CreatePost)
	g.GET("/posts/:kind/:id", h.GetPost)
	g.PUT("/posts/:kind/:id", h.UpdatePost)
	g.DELETE("/posts/:kind/:id", h.DeletePost)
}

// CreatePost creates a new post of the kind given in the URL
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	kind := models.PostKind(c.Param("kind"))

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.CreatePost(c.Request().Context(), kind, userID, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post by its (kind, id) reference
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postService.GetPost(c.Request().Context(), postRefFromPath(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"post":         post,
		"kind_display": post.Kind.DisplayName(),
	})
}

// UpdatePost updates an existing post; only the author may do this
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.UpdatePost(c.Request().Context(), postRefFromPath(c), userID, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post and cascades its comments, likes and
// notifications; only the author may do this
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID := getUserIDFromContext(c)

	if err := h.postService.DeletePost(c.Request().Context(), postRefFromPath(c), userID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
