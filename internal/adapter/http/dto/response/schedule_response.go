package response

import "cleanlyquote/internal/domain/entities"

type JobResponse struct {
	Job QuoteResponse `json:"job"`
}

type JobListResponse struct {
	Jobs []QuoteResponse `json:"jobs"`
}

type UnscheduleResponse struct {
	Success bool          `json:"success"`
	Job     QuoteResponse `json:"job"`
}

func FromJob(q entities.Quote) JobResponse {
	return JobResponse{Job: FromQuote(q)}
}
