package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/christopherece/StoryNest-prj/internal/models"
	"github.com/christopherece/StoryNest-prj/internal/repositories"
	"github.com/christopherece/StoryNest-prj/internal/services"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService    *services.FeedService
	userRepository repositories.UserRepository
	likeRepository repositories.LikeRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(
	feedService *services.FeedService,
	userRepo repositories.UserRepository,
	likeRepo repositories.LikeRepository,
) *FeedHandler {
	return &FeedHandler{
		feedService:    feedService,
		userRepository: userRepo,
		likeRepository: likeRepo,
	}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/users/:id/posts", h.GetAuthorFeed)
	g.GET("/announcements/upcoming", h.GetUpcomingAnnouncements)
}

// EnrichedPost is a post with author info and user-specific flags
type EnrichedPost struct {
	models.Post
	KindDisplay string             `json:"kind_display"`
	Author      models.UserCompact `json:"author"`
	IsLiked     bool               `json:"is_liked"`
}

// GetFeed returns the merged feed across all post kinds
func (h *FeedHandler) GetFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	page, limit := pageParams(c)

	posts, totalItems, err := h.feedService.ListFeed(c.Request().Context(), page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, h.feedResponse(posts, totalItems, page, limit, currentUserID))
}

// GetAuthorFeed returns the merged feed restricted to one author
func (h *FeedHandler) GetAuthorFeed(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	authorID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	page, limit := pageParams(c)

	posts, totalItems, err := h.feedService.ListFeedForAuthor(c.Request().Context(), uint(authorID), page, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, h.feedResponse(posts, totalItems, page, limit, currentUserID))
}

// GetUpcomingAnnouncements returns active announcements with future event dates
func (h *FeedHandler) GetUpcomingAnnouncements(c echo.Context) error {
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit < 1 || limit > 20 {
		limit = 5
	}

	announcements, err := h.feedService.UpcomingAnnouncements(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"announcements": announcements}})
}

func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return page, limit
}

func (h *FeedHandler) feedResponse(posts []models.Post, totalItems, page, limit int, currentUserID uint) echo.Map {
	enriched := h.enrichPosts(posts, currentUserID)
	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))

	return echo.Map{
		"success": true,
		"data": echo.Map{
			"posts": enriched,
		},
		"meta": echo.Map{
			"currentPage":     page,
			"totalPages":      totalPages,
			"totalItems":      totalItems,
			"itemsPerPage":    limit,
			"hasNextPage":     page < totalPages,
			"hasPreviousPage": page > 1,
		},
	}
}

func (h *FeedHandler) enrichPosts(posts []models.Post, currentUserID uint) []EnrichedPost {
	userCache := make(map[uint]models.UserCompact)
	enriched := make([]EnrichedPost, len(posts))

	for i, p := range posts {
		enriched[i] = EnrichedPost{Post: p, KindDisplay: p.Kind.DisplayName()}

		if author, ok := userCache[p.AuthorID]; ok {
			enriched[i].Author = author
		} else if user, err := h.userRepository.GetUserByID(p.AuthorID); err == nil {
			compact := user.ToCompact()
			userCache[p.AuthorID] = compact
			enriched[i].Author = compact
		}

		if currentUserID > 0 {
			liked, _ := h.likeRepository.HasUserLikedPost(p.Ref(), currentUserID)
			enriched[i].IsLiked = liked
		}
	}
	return enriched
}
