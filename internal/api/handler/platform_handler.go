package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialhub/socialhub-api/internal/core/domain"
)

// PlatformHandler serves the static platform catalog.
type PlatformHandler struct {
	registry domain.PlatformRegistry
}

func NewPlatformHandler(registry domain.PlatformRegistry) *PlatformHandler {
	return &PlatformHandler{registry: registry}
}

type platformsResponse struct {
	Platforms []domain.Platform `json:"platforms"`
}

// List returns the catalog of supported publish targets.
//
// @Summary      List supported platforms
// @Tags         platforms
// @Produce      json
// @Success      200  {object}  platformsResponse
// @Router       /platforms [get]
func (h *PlatformHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, platformsResponse{Platforms: h.registry})
}
