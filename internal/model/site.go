package model

import "time"

// Site is a website under maintenance. Name, URL, and platform may be
// changed after creation; the id and creation timestamp are assigned by
// the store and never change.
type Site struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	URL       string    `json:"url" db:"url"`
	Platform  string    `json:"platform" db:"platform"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
