package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/christopherece/StoryNest-prj/internal/models"
	"github.com/christopherece/StoryNest-prj/internal/repositories"
	"github.com/christopherece/StoryNest-prj/pkg/media"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ChildHandler handles HTTP requests for child records. Every operation is
// scoped to the authenticated parent.
type ChildHandler struct {
	childRepository repositories.ChildRepository
	mediaProcessor  media.Processor
}

// NewChildHandler creates a new ChildHandler
func NewChildHandler(childRepo repositories.ChildRepository, mediaProcessor media.Processor) *ChildHandler {
	return &ChildHandler{
		childRepository: childRepo,
		mediaProcessor:  mediaProcessor,
	}
}

// RegisterChildRoutes registers child-record routes
func (h *ChildHandler) RegisterChildRoutes(g *echo.Group) {
	g.POST("/children", h.CreateChild)
	g.GET("/children", h.GetChildren)
	g.PUT("/children/:id", h.UpdateChild)
	g.DELETE("/children/:id", h.DeleteChild)
}

// CreateChild creates a child record for the authenticated parent
func (h *ChildHandler) CreateChild(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	var req models.CreateChildRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	child := &models.Child{
		ParentID:    currentUserID,
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		PhotoURL:    req.PhotoURL,
	}

	if err := h.childRepository.CreateChild(child); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.processPhoto(child.PhotoURL)
	return c.JSON(http.StatusCreated, child)
}

// GetChildren lists the authenticated parent's child records
func (h *ChildHandler) GetChildren(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	children, err := h.childRepository.GetChildrenByParentID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, children)
}

// UpdateChild updates a child record owned by the authenticated parent
func (h *ChildHandler) UpdateChild(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	child, err := h.ownedChild(c, currentUserID)
	if err != nil {
		return err
	}

	var req models.UpdateChildRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if req.Name != "" {
		child.Name = req.Name
	}
	if req.DateOfBirth != nil {
		child.DateOfBirth = *req.DateOfBirth
	}
	photoChanged := req.PhotoURL != "" && req.PhotoURL != child.PhotoURL
	if req.PhotoURL != "" {
		child.PhotoURL = req.PhotoURL
	}

	if err := h.childRepository.UpdateChild(child); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if photoChanged {
		h.processPhoto(child.PhotoURL)
	}
	return c.JSON(http.StatusOK, child)
}

// DeleteChild deletes a child record owned by the authenticated parent
func (h *ChildHandler) DeleteChild(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	child, err := h.ownedChild(c, currentUserID)
	if err != nil {
		return err
	}

	if err := h.childRepository.DeleteChild(child.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ChildHandler) ownedChild(c echo.Context, parentID uint) (*models.Child, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid child ID")
	}

	child, err := h.childRepository.GetChildByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, echo.NewHTTPError(http.StatusNotFound, "Child record not found")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if child.ParentID != parentID {
		return nil, echo.NewHTTPError(http.StatusForbidden, "You are not authorized to manage this child record")
	}
	return child, nil
}

func (h *ChildHandler) processPhoto(photoURL string) {
	if h.mediaProcessor == nil || photoURL == "" {
		return
	}
	if err := h.mediaProcessor.GenerateThumbnail(photoURL); err != nil {
		log.Printf("Error processing child photo %s: %v", photoURL, err)
	}
}
