package handlers

import (
	request "cleanlyquote/internal/adapter/http/dto/request"
	response "cleanlyquote/internal/adapter/http/dto/response"
	"cleanlyquote/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ChecklistTemplateHandler struct {
	usecase usecase.IChecklistTemplateUseCase
}

func NewChecklistTemplateHandler(uc usecase.IChecklistTemplateUseCase) *ChecklistTemplateHandler {
	return &ChecklistTemplateHandler{usecase: uc}
}

// ListChecklistTemplates godoc
// @Summary  List checklist templates
// @Tags     checklists
// @Security Bearer
// @Produce  json
// @Success  200 {object} response.ChecklistTemplateListResponse
// @Router   /checklists [get]
func (h *ChecklistTemplateHandler) ListChecklistTemplates(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	templates, err := h.usecase.List(c.Request.Context(), tenant.ID)
	if err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChecklistTemplates(templates))
}

// GetChecklistTemplate godoc
// @Summary  Get a checklist template
// @Tags     checklists
// @Security Bearer
// @Produce  json
// @Param    id path string true "Template ID"
// @Success  200 {object} response.ChecklistTemplateEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /checklists/{id} [get]
func (h *ChecklistTemplateHandler) GetChecklistTemplate(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	t, err := h.usecase.Get(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChecklistTemplate(t))
}

// CreateChecklistTemplate godoc
// @Summary  Create a checklist template
// @Tags     checklists
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    payload body request.ChecklistTemplateRequest true "Template"
// @Success  201 {object} response.ChecklistTemplateEnvelope
// @Failure  400 {object} pkg.HTTPError
// @Router   /checklists [post]
func (h *ChecklistTemplateHandler) CreateChecklistTemplate(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.ChecklistTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	t, err := h.usecase.Create(c.Request.Context(), tenant.ID, payload.ToTemplate())
	if err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromChecklistTemplate(t))
}

// UpdateChecklistTemplate godoc
// @Summary  Edit a checklist template; quotes keep their snapshot
// @Tags     checklists
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id      path string                           true "Template ID"
// @Param    payload body request.ChecklistTemplateRequest true "Fields to change"
// @Success  200 {object} response.ChecklistTemplateEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /checklists/{id} [put]
func (h *ChecklistTemplateHandler) UpdateChecklistTemplate(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.ChecklistTemplateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	t, err := h.usecase.Update(c.Request.Context(), tenant.ID, c.Param("id"), payload.ToPatch())
	if err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromChecklistTemplate(t))
}

// DeleteChecklistTemplate godoc
// @Summary  Delete a checklist template
// @Tags     checklists
// @Security Bearer
// @Param    id path string true "Template ID"
// @Success  200 {object} response.SuccessResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /checklists/{id} [delete]
func (h *ChecklistTemplateHandler) DeleteChecklistTemplate(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), tenant.ID, c.Param("id")); err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Success: true})
}
