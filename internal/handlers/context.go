package handlers

import (
	"github.com/christopherece/StoryNest-prj/internal/apperrors"
	"github.com/christopherece/StoryNest-prj/internal/models"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext extracts the authenticated user ID set by the JWT
// middleware. Returns 0 when the request carries no valid identity.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get("user").(*models.JwtCustomClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// postRefFromPath builds the post reference carried in the URL.
func postRefFromPath(c echo.Context) models.PostRef {
	return models.PostRef{
		Kind: models.PostKind(c.Param("kind")),
		ID:   c.Param("id"),
	}
}

// httpError maps an application error to the HTTP error Echo renders.
func httpError(err error) *echo.HTTPError {
	return echo.NewHTTPError(apperrors.HTTPStatus(err), err.Error())
}
