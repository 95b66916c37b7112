package entity

import "time"

type City struct {
	ID          string
	Name        string
	Description string
	Theatres    []string
	UpdatedAt   time.Time
}
