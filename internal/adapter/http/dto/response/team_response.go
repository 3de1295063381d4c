package response

import (
	"cleanlyquote/internal/domain/entities"
	"time"

	"github.com/samber/lo"
)

type TeamMemberResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type TeamMemberEnvelope struct {
	Member TeamMemberResponse `json:"member"`
}

type TeamListResponse struct {
	Team []TeamMemberResponse `json:"team"`
}

func toTeamMember(m entities.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{ID: m.ID, Name: m.Name, Email: m.Email, Role: m.Role, CreatedAt: m.CreatedAt}
}

func FromTeamMember(m entities.TeamMember) TeamMemberEnvelope {
	return TeamMemberEnvelope{Member: toTeamMember(m)}
}

func FromTeam(ms []entities.TeamMember) TeamListResponse {
	return TeamListResponse{Team: lo.Map(ms, func(m entities.TeamMember, _ int) TeamMemberResponse { return toTeamMember(m) })}
}
