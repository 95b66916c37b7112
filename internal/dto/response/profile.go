package response

import "cinehub-client/internal/data/entity"

type ProfileResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`
}

func ProfileToResponse(profile *entity.Profile) *ProfileResponse {
	return &ProfileResponse{
		Name:    profile.Name,
		Email:   profile.Email,
		Phone:   profile.Phone,
		Address: profile.Address,
		City:    profile.City,
		State:   profile.State,
		Country: profile.Country,
		Pincode: profile.Pincode,
	}
}
