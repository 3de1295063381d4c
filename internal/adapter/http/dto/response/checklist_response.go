package response

import (
	"cleanlyquote/internal/domain/entities"
	"time"

	"github.com/samber/lo"
)

type ChecklistRoomResponse struct {
	Room  string   `json:"room"`
	Tasks []string `json:"tasks"`
}

type ChecklistResponse struct {
	ID             string                  `json:"id"`
	QuoteID        string                  `json:"quoteId"`
	TemplateID     *string                 `json:"templateId"`
	TemplateName   *string                 `json:"templateName"`
	Rooms          []ChecklistRoomResponse `json:"rooms"`
	CompletedTasks []string                `json:"completedTasks"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// ChecklistEnvelope holds a null checklist when none is attached.
type ChecklistEnvelope struct {
	Checklist *ChecklistResponse `json:"checklist"`
}

func FromChecklist(c entities.QuoteChecklist) ChecklistEnvelope {
	if c.ID == "" {
		return ChecklistEnvelope{}
	}
	tasks := c.CompletedTasks
	if tasks == nil {
		tasks = []string{}
	}
	return ChecklistEnvelope{Checklist: &ChecklistResponse{
		ID:             c.ID,
		QuoteID:        c.QuoteID,
		TemplateID:     c.TemplateID,
		TemplateName:   c.TemplateName,
		Rooms:          toRooms(c.Rooms),
		CompletedTasks: tasks,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}}
}

type ChecklistTemplateResponse struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Rooms     []ChecklistRoomResponse `json:"rooms"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt time.Time               `json:"updatedAt"`
}

type ChecklistTemplateEnvelope struct {
	Checklist ChecklistTemplateResponse `json:"checklist"`
}

type ChecklistTemplateListResponse struct {
	Checklists []ChecklistTemplateResponse `json:"checklists"`
}

func toTemplate(t entities.ChecklistTemplate) ChecklistTemplateResponse {
	return ChecklistTemplateResponse{ID: t.ID, Name: t.Name, Rooms: toRooms(t.Rooms), CreatedAt: t.CreatedAt, UpdatedAt: t.UpdatedAt}
}

func FromChecklistTemplate(t entities.ChecklistTemplate) ChecklistTemplateEnvelope {
	return ChecklistTemplateEnvelope{Checklist: toTemplate(t)}
}

func FromChecklistTemplates(ts []entities.ChecklistTemplate) ChecklistTemplateListResponse {
	return ChecklistTemplateListResponse{Checklists: lo.Map(ts, func(t entities.ChecklistTemplate, _ int) ChecklistTemplateResponse { return toTemplate(t) })}
}

func toRooms(rooms []entities.ChecklistRoom) []ChecklistRoomResponse {
	return lo.Map(rooms, func(r entities.ChecklistRoom, _ int) ChecklistRoomResponse {
		tasks := r.Tasks
		if tasks == nil {
			tasks = []string{}
		}
		return ChecklistRoomResponse{Room: r.Room, Tasks: tasks}
	})
}
