package routes

import (
	"cleanlyquote/internal/adapter/http/handlers"
	"cleanlyquote/internal/adapter/http/middleware"
	"cleanlyquote/internal/domain/entitlement"

	"github.com/gin-gonic/gin"
)

const (
	PathClients    = "/clients"
	PathTeam       = "/team"
	PathChecklists = "/checklists"
)

func addClientRoutes(rg *gin.RouterGroup, clients *handlers.ClientHandler) {
	c := rg.Group(PathClients)
	{
		c.GET("", clients.ListClients)
		c.POST("", clients.CreateClient)
		c.GET("/:id", clients.GetClient)
		c.PUT("/:id", clients.UpdateClient)
		c.DELETE("/:id", clients.DeleteClient)
		c.GET("/:id/quotes", clients.ListClientQuotes)
	}
}

func addTeamRoutes(rg *gin.RouterGroup, team *handlers.TeamHandler) {
	t := rg.Group(PathTeam, middleware.RequireFeature(entitlement.FeatureTeam))
	{
		t.GET("", team.ListTeam)
		t.POST("", team.CreateTeamMember)
		t.PUT("/:id", team.UpdateTeamMember)
		t.DELETE("/:id", team.DeleteTeamMember)
		t.GET("/:id/jobs", team.ListMemberJobs)
	}
}

func addChecklistTemplateRoutes(rg *gin.RouterGroup, templates *handlers.ChecklistTemplateHandler) {
	t := rg.Group(PathChecklists)
	{
		t.GET("", templates.ListChecklistTemplates)
		t.POST("", templates.CreateChecklistTemplate)
		t.GET("/:id", templates.GetChecklistTemplate)
		t.PUT("/:id", templates.UpdateChecklistTemplate)
		t.DELETE("/:id", templates.DeleteChecklistTemplate)
	}
}
