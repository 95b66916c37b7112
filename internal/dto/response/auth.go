package response

// AuthResponse tells the browser where to land after login/register:
// admins go to the console, customers back to where they came from.
type AuthResponse struct {
	IsAdmin    bool   `json:"is_admin"`
	RedirectTo string `json:"redirect_to"`
}
