package domain

// Email is a plain text message sent to a single recipient.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
