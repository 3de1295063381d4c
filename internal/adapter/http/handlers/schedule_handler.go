package handlers

import (
	request "cleanlyquote/internal/adapter/http/dto/request"
	response "cleanlyquote/internal/adapter/http/dto/response"
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the calendar view of quotes.
type ScheduleHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewScheduleHandler(uc usecase.IQuoteUseCase) *ScheduleHandler {
	request.RegisterValidators()
	return &ScheduleHandler{usecase: uc}
}

// ListSchedule godoc
// @Summary  Scheduled jobs between two dates (inclusive)
// @Tags     schedule
// @Security Bearer
// @Produce  json
// @Param    start query string true "YYYY-MM-DD"
// @Param    end   query string true "YYYY-MM-DD"
// @Success  200 {object} response.JobListResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /schedule [get]
func (h *ScheduleHandler) ListSchedule(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var q request.ScheduleRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	jobs, err := h.usecase.ListSchedule(c.Request.Context(), tenant.ID, q.Start, q.End)
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.JobListResponse{Jobs: response.FromQuotes(jobs)})
}

// ScheduleQuote godoc
// @Summary  Put a quote on the calendar; drafts become scheduled
// @Tags     schedule
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    quoteId path string                  true "Quote ID"
// @Param    payload body request.ScheduleRequest true "Slot"
// @Success  200 {object} response.JobResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /schedule/{quoteId} [post]
func (h *ScheduleHandler) ScheduleQuote(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.ScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	q, err := h.usecase.Schedule(c.Request.Context(), tenant.ID, c.Param("quoteId"), payload.ToSchedule())
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(q))
}

// UpdateJobStatus godoc
// @Summary  Set a quote's status (owner override, no transition rules)
// @Tags     schedule
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    quoteId path string                true "Quote ID"
// @Param    payload body request.StatusRequest true "Status"
// @Success  200 {object} response.JobResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /schedule/{quoteId}/status [put]
func (h *ScheduleHandler) UpdateJobStatus(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, mapQuoteError(usecase.ErrInvalidQuoteStatus))
		return
	}
	q, err := h.usecase.UpdateStatus(c.Request.Context(), tenant.ID, c.Param("quoteId"), entities.QuoteStatus(payload.Status))
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJob(q))
}

// UnscheduleQuote godoc
// @Summary  Remove a quote from the calendar and reset it to draft
// @Tags     schedule
// @Security Bearer
// @Produce  json
// @Param    quoteId path string true "Quote ID"
// @Success  200 {object} response.UnscheduleResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /schedule/{quoteId} [delete]
func (h *ScheduleHandler) UnscheduleQuote(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	q, err := h.usecase.Unschedule(c.Request.Context(), tenant.ID, c.Param("quoteId"))
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.UnscheduleResponse{Success: true, Job: response.FromQuote(q)})
}
