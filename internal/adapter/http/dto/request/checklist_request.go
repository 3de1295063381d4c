package request

import "cleanlyquote/internal/domain/entities"

type AttachChecklistRequest struct {
	TemplateID *string `json:"templateId"`
}

type UpdateChecklistRequest struct {
	CompletedTasks []string `json:"completedTasks" binding:"required"`
}

type ChecklistRoomRequest struct {
	Room  string   `json:"room"`
	Tasks []string `json:"tasks"`
}

// ChecklistTemplateRequest creates or edits a template. On update an absent
// rooms field keeps the stored rooms while an empty array clears them.
type ChecklistTemplateRequest struct {
	Name  *string                `json:"name"`
	Rooms []ChecklistRoomRequest `json:"rooms"`
}

func (r ChecklistTemplateRequest) rooms() []entities.ChecklistRoom {
	if r.Rooms == nil {
		return nil
	}
	out := make([]entities.ChecklistRoom, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		out = append(out, entities.ChecklistRoom{Room: room.Room, Tasks: room.Tasks})
	}
	return out
}

func (r ChecklistTemplateRequest) ToTemplate() entities.ChecklistTemplate {
	t := entities.ChecklistTemplate{Rooms: r.rooms()}
	if r.Name != nil {
		t.Name = *r.Name
	}
	return t
}

func (r ChecklistTemplateRequest) ToPatch() entities.ChecklistTemplatePatch {
	return entities.ChecklistTemplatePatch{Name: r.Name, Rooms: r.rooms()}
}
