package response

import (
	"cleanlyquote/internal/domain/entities"
	"cleanlyquote/internal/usecase"
	"time"
)

type ShareLinkResponse struct {
	ShareToken string     `json:"shareToken"`
	ShareURL   string     `json:"shareUrl"`
	ExpiresAt  *time.Time `json:"expiresAt"`
}

func FromShareLink(l entities.ShareLink) ShareLinkResponse {
	return ShareLinkResponse{ShareToken: l.Token, ShareURL: l.URL, ExpiresAt: l.ExpiresAt}
}

type BusinessResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	BrandColor string `json:"brandColor"`
}

// PublicQuoteResponse is what an unauthenticated share-link holder receives.
type PublicQuoteResponse struct {
	Quote    ClientQuoteFields `json:"quote"`
	Business BusinessResponse  `json:"business"`
}

func FromPublicQuote(p usecase.PublicQuote) PublicQuoteResponse {
	return PublicQuoteResponse{
		Quote: clientFields(p.Quote),
		Business: BusinessResponse{
			Name:       p.Business.Name,
			Email:      p.Business.Email,
			BrandColor: p.Business.BrandColor,
		},
	}
}

type ApprovalResponse struct {
	Success        bool       `json:"success"`
	Message        string     `json:"message"`
	ClientApproved bool       `json:"clientApproved"`
	ApprovedAt     *time.Time `json:"approvedAt"`
}

func FromApproval(q entities.Quote) ApprovalResponse {
	return ApprovalResponse{
		Success:        true,
		Message:        "Quote approved successfully!",
		ClientApproved: q.ClientApproved,
		ApprovedAt:     q.ClientApprovedAt,
	}
}

type ChangeRequestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ChangeRequestAccepted() ChangeRequestResponse {
	return ChangeRequestResponse{
		Success: true,
		Message: "Change request submitted. The business will review and get back to you.",
	}
}
