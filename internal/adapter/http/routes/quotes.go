package routes

import (
	"cleanlyquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathSchedule = "/schedule"
)

func addQuoteRoutes(rg *gin.RouterGroup, quotes *handlers.QuoteHandler, share *handlers.ShareLinkHandler, checklists *handlers.ChecklistHandler) {
	q := rg.Group(PathQuotes)
	{
		q.GET("", quotes.ListQuotes)
		q.POST("", quotes.CreateQuote)
		q.GET("/:id", quotes.GetQuote)
		q.PUT("/:id", quotes.UpdateQuote)
		q.DELETE("/:id", quotes.DeleteQuote)
		q.POST("/:id/send", quotes.SendQuote)

		q.GET("/:id/share", share.GetShareLink)
		q.POST("/:id/share/regenerate", share.RegenerateShareLink)

		q.GET("/:id/checklist", checklists.GetChecklist)
		q.POST("/:id/checklist", checklists.AttachChecklist)
		q.PUT("/:id/checklist", checklists.UpdateChecklist)
		q.DELETE("/:id/checklist", checklists.DetachChecklist)
	}
}

func addScheduleRoutes(rg *gin.RouterGroup, schedule *handlers.ScheduleHandler) {
	s := rg.Group(PathSchedule)
	{
		s.GET("", schedule.ListSchedule)
		s.POST("/:quoteId", schedule.ScheduleQuote)
		s.PUT("/:quoteId/status", schedule.UpdateJobStatus)
		s.DELETE("/:quoteId", schedule.UnscheduleQuote)
	}
}
