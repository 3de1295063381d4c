package response

import (
	"cleanlyquote/internal/domain/entities"
	"time"

	"github.com/samber/lo"
)

type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ClientEnvelope struct {
	Client ClientResponse `json:"client"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

func toClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromClient(c entities.Client) ClientEnvelope {
	return ClientEnvelope{Client: toClient(c)}
}

func FromClients(cs []entities.Client) ClientListResponse {
	return ClientListResponse{Clients: lo.Map(cs, func(c entities.Client, _ int) ClientResponse { return toClient(c) })}
}
