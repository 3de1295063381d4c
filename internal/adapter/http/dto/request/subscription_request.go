package request

type CheckoutRequest struct {
	Interval string `json:"interval" binding:"omitempty,oneof=month year"`
}

type AdminSubscriptionRequest struct {
	Status string `json:"status" binding:"required"`
}
