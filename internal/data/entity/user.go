package entity

import "time"

// User is the admin console's view of a backend account.
type User struct {
	ID        string
	Username  string
	Email     string
	IsActive  bool
	UpdatedAt time.Time
}

// Profile is the customer's own editable account details.
type Profile struct {
	Name    string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	Country string
	Pincode string
}
