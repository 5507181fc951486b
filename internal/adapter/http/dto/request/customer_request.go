package request

type CreateCustomerRequest struct {
	Document     string `json:"document" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
}

// UpdateCustomerRequest is a partial update. Absent fields are left untouched.
type UpdateCustomerRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Subscription *string `json:"subscription"`
}

func (r UpdateCustomerRequest) Empty() bool {
	return r.Name == nil && r.Phone == nil && r.Email == nil && r.Subscription == nil
}

type SubscriptionRequest struct {
	Kind string `json:"kind" binding:"required"`
}
