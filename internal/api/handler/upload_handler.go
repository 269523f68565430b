package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialhub/socialhub-api/internal/api/metrics"
	"github.com/socialhub/socialhub-api/internal/core/domain"
	"github.com/socialhub/socialhub-api/internal/core/ports"
)

type UploadHandler struct {
	uploadService ports.UploadService
}

func NewUploadHandler(uploadService ports.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

type uploadRequest struct {
	MediaType string   `json:"media_type" validate:"required,oneof=video image text"`
	Caption   string   `json:"caption"`
	Platforms []string `json:"platforms"  validate:"required,min=1"`
}

type uploadResponse struct {
	Status string `json:"status"`
	LogID  string `json:"log_id"`
}

type uploadStatsResponse struct {
	Plan  domain.Plan `json:"plan"`
	Limit *int        `json:"limit"`
	Used  int         `json:"used"`
}

// Stats reports the caller's usage against today's quota. Limit is null for
// unbounded plans.
//
// @Summary      Daily upload quota standing
// @Tags         uploads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  uploadStatsResponse
// @Failure      401  {object}  errorResponse
// @Router       /uploads/stats [get]
func (h *UploadHandler) Stats(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	stats, err := h.uploadService.Stats(c.Request().Context(), user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, uploadStatsResponse{
		Plan:  stats.Plan,
		Limit: stats.Limit,
		Used:  stats.Used,
	})
}

// Upload queues a cross-platform upload, charging one quota unit per target
// platform. A request that would exceed the daily ceiling returns 429 with
// the used/limit pair.
//
// @Summary      Queue a cross-platform upload
// @Tags         uploads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      uploadRequest  true  "Upload details"
// @Success      201   {object}  uploadResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	log, err := h.uploadService.Submit(c.Request().Context(), user, ports.SubmitUploadInput{
		MediaType: domain.MediaType(req.MediaType),
		Caption:   req.Caption,
		Platforms: req.Platforms,
	})
	if err != nil {
		if _, isQuota := err.(*domain.QuotaExceededError); isQuota {
			metrics.QuotaRejectionsTotal.WithLabelValues(string(user.Plan)).Inc()
		}
		return err
	}

	metrics.UploadsQueuedTotal.WithLabelValues(string(log.MediaType)).Inc()
	metrics.UploadPlatformUnits.Observe(float64(len(log.Platforms)))

	return c.JSON(http.StatusCreated, uploadResponse{
		Status: string(log.Status),
		LogID:  log.ID,
	})
}
