package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/socialhub/socialhub-api/internal/core/ports"
)

// AIHandler serves the simulated AI-edit endpoint. The ultra_pro gate lives in
// the PlanOnly middleware on the route.
type AIHandler struct {
	commerceService ports.CommerceService
}

func NewAIHandler(commerceService ports.CommerceService) *AIHandler {
	return &AIHandler{commerceService: commerceService}
}

type aiEditRequest struct {
	SourceURL  string   `json:"source_url"`
	Operations []string `json:"operations"`
}

type aiEditResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// Edit queues a simulated AI-edit job for an ultra_pro subscriber.
//
// @Summary      Queue an AI edit job
// @Tags         ai
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      aiEditRequest  true  "Edit job details"
// @Success      201   {object}  aiEditResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /ai/edit [post]
func (h *AIHandler) Edit(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req aiEditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	job, err := h.commerceService.CreateAIJob(c.Request().Context(), user, ports.AIEditInput{
		SourceURL:  req.SourceURL,
		Operations: req.Operations,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, aiEditResponse{JobID: job.ID, Status: job.Status})
}
