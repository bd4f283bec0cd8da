package model

import "time"

// ContactMessage represents a message submitted via the portfolio contact form.
// ID and CreatedAt are assigned by the store at insertion.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// MissingFields returns the JSON names of the required fields that are empty,
// in declaration order. An empty result means the message can be stored.
func (m *ContactMessage) MissingFields() []string {
	var missing []string
	if m.Name == "" {
		missing = append(missing, "name")
	}
	if m.Email == "" {
		missing = append(missing, "email")
	}
	if m.Subject == "" {
		missing = append(missing, "subject")
	}
	if m.Message == "" {
		missing = append(missing, "message")
	}
	return missing
}
