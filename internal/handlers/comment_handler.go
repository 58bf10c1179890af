package handlers

import (
	"net/http"

	"github.com/christopherece/StoryNest-prj/internal/models"
	"github.com/christopherece/StoryNest-prj/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	engagementService *services.EngagementService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(engagementService *services.EngagementService) *CommentHandler {
	return &CommentHandler{engagementService: engagementService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:kind/:id/comments", h.CreateComment)
	g.GET("/posts/:kind/:id/comments", h.GetComments)
}

// CreateComment creates a new comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.engagementService.AddComment(c.Request().Context(), postRefFromPath(c), userID, req.Content)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetComments retrieves all comments for a specific post, newest first
func (h *CommentHandler) GetComments(c echo.Context) error {
	comments, err := h.engagementService.ListComments(c.Request().Context(), postRefFromPath(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, comments)
}
