package handlers

import (
	"bytes"
	"net/http"

	request "github.com/kuntarvishnuprasad41/sparelab-epc/internal/adapter/http/dto/request"
	response "github.com/kuntarvishnuprasad41/sparelab-epc/internal/adapter/http/dto/response"
	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// JobCardHandler serves the job-card workflow: creation, status updates,
// lookups and fleet metrics.
type JobCardHandler struct {
	usecase usecase.IJobCardUseCase
}

func NewJobCardHandler(uc usecase.IJobCardUseCase) *JobCardHandler {
	RegisterValidators()
	return &JobCardHandler{usecase: uc}
}

// ListStatuses godoc
// @Summary      List job card statuses
// @Description  Returns every status in display order
// @Tags         job-cards
// @Produce      json
// @Success      200  {array}  string
// @Router       /job-cards/statuses [get]
func (h *JobCardHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromStatuses(h.usecase.Statuses()))
}

// GetMetrics godoc
// @Summary      Job card metrics
// @Description  Card count, revenue and per-status counts over all live cards
// @Tags         job-cards
// @Produce      json
// @Success      200  {object}  response.JobCardMetricsResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /job-cards/metrics [get]
func (h *JobCardHandler) GetMetrics(c *gin.Context) {
	m, err := h.usecase.Metrics(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobCardMetrics(m))
}

// ListJobCards godoc
// @Summary      List job cards
// @Description  Newest first, optionally filtered by a case-insensitive phone fragment
// @Tags         job-cards
// @Produce      json
// @Param        customerPhone  query     string  false  "Phone fragment"
// @Success      200            {array}   response.JobCardResponse
// @Failure      500            {object}  pkg.HTTPError
// @Router       /job-cards [get]
func (h *JobCardHandler) ListJobCards(c *gin.Context) {
	cards, err := h.usecase.List(c.Request.Context(), c.Query("customerPhone"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobCards(cards))
}

// GetJobCard godoc
// @Summary      Get a job card
// @Tags         job-cards
// @Produce      json
// @Param        jobCardId  path      string  true  "Job card id"
// @Success      200        {object}  response.JobCardResponse
// @Failure      404        {object}  pkg.HTTPError
// @Router       /job-cards/{jobCardId} [get]
func (h *JobCardHandler) GetJobCard(c *gin.Context) {
	card, err := h.usecase.GetByID(c.Request.Context(), c.Param("jobCardId"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobCard(card))
}

// CreateJobCard godoc
// @Summary      Create a job card
// @Description  Normalizes line items against the catalog and prices the card
// @Tags         job-cards
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateJobCardRequest  true  "Job card"
// @Success      201   {object}  response.JobCardResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /job-cards [post]
func (h *JobCardHandler) CreateJobCard(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		renderAppError(c, errBadRequest)
		return
	}
	if trimmed := bytes.TrimSpace(body); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		renderAppError(c, errBodyRequired)
		return
	}

	var payload request.CreateJobCardRequest
	if err := binding.JSON.BindBody(body, &payload); err != nil {
		renderAppError(c, mapBindingError(err))
		return
	}

	card, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromJobCard(card))
}

// UpdateJobCardStatus godoc
// @Summary      Update job card status
// @Tags         job-cards
// @Accept       json
// @Produce      json
// @Param        jobCardId  path      string                       true  "Job card id"
// @Param        body       body      request.StatusUpdateRequest  true  "New status"
// @Success      200        {object}  response.JobCardResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      404        {object}  pkg.HTTPError
// @Failure      422        {object}  pkg.HTTPError
// @Router       /job-cards/{jobCardId}/status [patch]
func (h *JobCardHandler) UpdateJobCardStatus(c *gin.Context) {
	var payload request.StatusUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderAppError(c, mapBindingError(err))
		return
	}

	card, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("jobCardId"), payload.Status.String())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromJobCard(card))
}
