package email

import "time"

// Envelope is the header-level view of a message, enough to show an
// inbox listing without downloading bodies.
type Envelope struct {
	UID     uint32    `json:"uid"`
	From    string    `json:"from"`
	Subject string    `json:"subject"`
	Date    time.Time `json:"date"`
	Unread  bool      `json:"unread"`
}

// Message is a fully fetched email with its plain-text body.
type Message struct {
	Envelope Envelope `json:"envelope"`
	Body     string   `json:"body"`
}
