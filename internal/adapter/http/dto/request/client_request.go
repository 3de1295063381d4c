package request

import "cleanlyquote/internal/domain/entities"

// ClientRequest is the body of client create and update calls. Absent fields
// are left untouched on update.
type ClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

func (r ClientRequest) ToClient() entities.Client {
	c := entities.Client{Email: r.Email, Phone: r.Phone, Address: r.Address, Notes: r.Notes}
	if r.Name != nil {
		c.Name = *r.Name
	}
	return c
}

func (r ClientRequest) ToPatch() entities.ClientPatch {
	return entities.ClientPatch{Name: r.Name, Email: r.Email, Phone: r.Phone, Address: r.Address, Notes: r.Notes}
}

type TeamMemberRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Role  *string `json:"role"`
}

func (r TeamMemberRequest) ToMember() entities.TeamMember {
	m := entities.TeamMember{Email: r.Email}
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Role != nil {
		m.Role = *r.Role
	}
	return m
}

func (r TeamMemberRequest) ToPatch() entities.TeamMemberPatch {
	return entities.TeamMemberPatch{Name: r.Name, Email: r.Email, Role: r.Role}
}
