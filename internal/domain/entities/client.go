package entities

import "time"

// Client is a customer record in a tenant's address book. Quotes point at it
// through Quote.ClientID; deleting the client clears that reference.
type Client struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientPatch carries the editable fields of a client. Nil fields keep their value.
type ClientPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Notes   *string
}
