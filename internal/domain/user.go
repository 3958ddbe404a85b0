package domain

import "time"

type User struct {
	ID             int64
	FullName       string
	Email          string
	PasswordHash   string
	TravelDocument *string
	CreatedAt      time.Time
}
