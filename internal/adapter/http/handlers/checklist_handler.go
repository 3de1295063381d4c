package handlers

import (
	request "cleanlyquote/internal/adapter/http/dto/request"
	response "cleanlyquote/internal/adapter/http/dto/response"
	"cleanlyquote/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ChecklistHandler struct {
	usecase usecase.IChecklistUseCase
}

func NewChecklistHandler(uc usecase.IChecklistUseCase) *ChecklistHandler {
	return &ChecklistHandler{usecase: uc}
}

// GetChecklist godoc
// @Summary  Checklist attached to a quote (null when none)
// @Tags     checklists
// @Security Bearer
// @Produce  json
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.ChecklistEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id}/checklist [get]
func (h *ChecklistHandler) GetChecklist(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	cl, err := h.usecase.Get(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChecklist(cl))
}

// AttachChecklist godoc
// @Summary  Attach or replace the checklist of a quote
// @Tags     checklists
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id      path string                         true  "Quote ID"
// @Param    payload body request.AttachChecklistRequest false "Template"
// @Success  200 {object} response.ChecklistEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id}/checklist [post]
func (h *ChecklistHandler) AttachChecklist(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.AttachChecklistRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	cl, err := h.usecase.Attach(c.Request.Context(), tenant.ID, c.Param("id"), payload.TemplateID)
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChecklist(cl))
}

// UpdateChecklist godoc
// @Summary  Replace the completed task set
// @Tags     checklists
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id      path string                         true "Quote ID"
// @Param    payload body request.UpdateChecklistRequest true "Completed tasks"
// @Success  200 {object} response.ChecklistEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id}/checklist [put]
func (h *ChecklistHandler) UpdateChecklist(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.UpdateChecklistRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, invalid("completedTasks must be an array"))
		return
	}
	cl, err := h.usecase.UpdateCompletedTasks(c.Request.Context(), tenant.ID, c.Param("id"), payload.CompletedTasks)
	if err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChecklist(cl))
}

// DetachChecklist godoc
// @Summary  Remove the checklist of a quote
// @Tags     checklists
// @Security Bearer
// @Param    id path string true "Quote ID"
// @Success  200 {object} response.SuccessResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /quotes/{id}/checklist [delete]
func (h *ChecklistHandler) DetachChecklist(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	if err := h.usecase.Detach(c.Request.Context(), tenant.ID, c.Param("id")); err != nil {
		abortWithError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}
