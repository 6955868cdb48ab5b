package mailer

// Message is a single outbound email. HTML may be empty, in which case only
// the plain-text part is sent.
type Message struct {
	ToEmail string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// Mailer defines the interface for sending emails.
type Mailer interface {
	Send(msg Message) error
}
