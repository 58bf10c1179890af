package handlers

import (
	"net/http"

	"github.com/christopherece/StoryNest-prj/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	engagementService *services.EngagementService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(engagementService *services.EngagementService) *LikeHandler {
	return &LikeHandler{engagementService: engagementService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:kind/:id/like", h.ToggleLike)
}

// ToggleLike flips the caller's like on a post and reports the new state
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	userID := getUserIDFromContext(c)

	result, err := h.engagementService.ToggleLike(c.Request().Context(), postRefFromPath(c), userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}
