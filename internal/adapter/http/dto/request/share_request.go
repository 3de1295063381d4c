package request

// RegenerateShareRequest sets the lifetime of the new link. No value means
// the link never expires.
type RegenerateShareRequest struct {
	ExpiresInDays *int `json:"expiresInDays"`
	// ExpiresIn is the older name of ExpiresInDays.
	ExpiresIn *int `json:"expiresIn"`
}

func (r RegenerateShareRequest) Days() *int {
	if r.ExpiresInDays != nil {
		return r.ExpiresInDays
	}
	return r.ExpiresIn
}

type ChangeRequestRequest struct {
	Message string `json:"message"`
}
