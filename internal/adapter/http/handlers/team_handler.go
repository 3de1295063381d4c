package handlers

import (
	request "cleanlyquote/internal/adapter/http/dto/request"
	response "cleanlyquote/internal/adapter/http/dto/response"
	"cleanlyquote/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TeamHandler serves the team roster. Its routes sit behind RequireFeature.
type TeamHandler struct {
	usecase usecase.ITeamUseCase
}

func NewTeamHandler(uc usecase.ITeamUseCase) *TeamHandler {
	return &TeamHandler{usecase: uc}
}

// ListTeam godoc
// @Summary  List team members
// @Tags     team
// @Security Bearer
// @Produce  json
// @Success  200 {object} response.TeamListResponse
// @Failure  403 {object} pkg.HTTPError
// @Router   /team [get]
func (h *TeamHandler) ListTeam(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	members, err := h.usecase.List(c.Request.Context(), tenant.ID)
	if err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTeam(members))
}

// CreateTeamMember godoc
// @Summary  Add a team member
// @Tags     team
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    payload body request.TeamMemberRequest true "Member"
// @Success  201 {object} response.TeamMemberEnvelope
// @Failure  400 {object} pkg.HTTPError
// @Failure  403 {object} pkg.HTTPError
// @Router   /team [post]
func (h *TeamHandler) CreateTeamMember(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.TeamMemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	member, err := h.usecase.Create(c.Request.Context(), tenant.ID, payload.ToMember())
	if err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTeamMember(member))
}

// UpdateTeamMember godoc
// @Summary  Edit a team member
// @Tags     team
// @Security Bearer
// @Accept   json
// @Produce  json
// @Param    id      path string                    true "Member ID"
// @Param    payload body request.TeamMemberRequest true "Fields to change"
// @Success  200 {object} response.TeamMemberEnvelope
// @Failure  404 {object} pkg.HTTPError
// @Router   /team/{id} [put]
func (h *TeamHandler) UpdateTeamMember(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	var payload request.TeamMemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}
	member, err := h.usecase.Update(c.Request.Context(), tenant.ID, c.Param("id"), payload.ToPatch())
	if err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTeamMember(member))
}

// DeleteTeamMember godoc
// @Summary  Remove a team member and unassign their jobs
// @Tags     team
// @Security Bearer
// @Param    id path string true "Member ID"
// @Success  200 {object} response.SuccessResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /team/{id} [delete]
func (h *TeamHandler) DeleteTeamMember(c *gin.Context) {
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

// ListMemberJobs godoc
// @Summary  Jobs assigned to a member, in schedule order
// @Tags     team
// @Security Bearer
// @Produce  json
// @Param    id path string true "Member ID"
// @Success  200 {object} response.JobListResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /team/{id}/jobs [get]
func (h *TeamHandler) ListMemberJobs(c *gin.Context) {
	tenant, ok := requireTenant(c)
	if !ok {
		return
	}
	jobs, err := h.usecase.ListJobs(c.Request.Context(), tenant.ID, c.Param("id"))
	if err != nil {
		abortWithError(c, mapResourceError(err))
		return
	}
	c.JSON(http.StatusOK, response.JobListResponse{Jobs: response.FromQuotes(jobs)})
}
