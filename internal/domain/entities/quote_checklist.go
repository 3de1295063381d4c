package entities

import "time"

// QuoteChecklist is the optional checklist attached to a quote (at most one).
// Deleting the quote deletes it.
//
// TemplateName and Rooms are copied from the template when it is attached, so
// later edits to the template or its deletion do not change work in progress.
type QuoteChecklist struct {
	ID             string          `json:"id"`
	QuoteID        string          `json:"quote_id"`
	TemplateID     *string         `json:"template_id,omitempty"`
	TemplateName   *string         `json:"template_name,omitempty"`
	Rooms          []ChecklistRoom `json:"rooms"`
	CompletedTasks []string        `json:"completed_tasks"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
