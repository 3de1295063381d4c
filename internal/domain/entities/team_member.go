package entities

import "time"

const DefaultTeamRole = "cleaner"

// TeamMember is a person jobs can be assigned to through Quote.AssignedTo.
// Deleting the member unassigns those jobs.
type TeamMember struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type TeamMemberPatch struct {
	Name  *string
	Email *string
	Role  *string
}
