package model

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sanitized returns a copy of the user without the password hash.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	sanitized := *u
	sanitized.Password = ""
	return &sanitized
}

type UserWithCount struct {
	User
	PostCount int64 `json:"postCount"`
}

type UserDetailed struct {
	User
	Posts []*PostSummary `json:"posts"`
}
