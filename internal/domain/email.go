package domain

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// ContactNotificationEmailData holds data for the new-contact-message
// notification sent to the club inbox.
type ContactNotificationEmailData struct {
	Name    string
	Email   string
	Subject string
	Message string
}
