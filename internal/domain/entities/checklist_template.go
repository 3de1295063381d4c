package entities

import "time"

// ChecklistRoom groups the tasks of one room, e.g. Kitchen: wipe counters.
type ChecklistRoom struct {
	Room  string   `json:"room"`
	Tasks []string `json:"tasks"`
}

// ChecklistTemplate is a reusable cleaning checklist owned by a tenant.
type ChecklistTemplate struct {
	ID        string          `json:"id"`
	TenantID  string          `json:"tenant_id"`
	Name      string          `json:"name"`
	Rooms     []ChecklistRoom `json:"rooms"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ChecklistTemplatePatch leaves Rooms untouched when nil.
type ChecklistTemplatePatch struct {
	Name  *string
	Rooms []ChecklistRoom
}
