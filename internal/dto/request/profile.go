package request

type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required,min=3"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=10"`
	Address string `json:"address" validate:"required,min=10"`
	City    string `json:"city" validate:"required,min=3"`
	State   string `json:"state" validate:"required,min=3"`
	Country string `json:"country" validate:"required,min=3"`
	Pincode string `json:"pincode" validate:"required,min=6"`
}
