package domain

import "time"

// ContactMessageStatusUnread is the status every new message starts in.
const ContactMessageStatusUnread = "unread"

// ContactMessage is a contact form submission. Write-once: created by the
// contact route, read only from the admin UI (out of scope here).
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// DocumentData builds the stored record for a new contact message.
func (m ContactMessage) DocumentData(now time.Time) map[string]any {
	return map[string]any{
		"name":      m.Name,
		"email":     m.Email,
		"subject":   m.Subject,
		"message":   m.Message,
		"status":    ContactMessageStatusUnread,
		"createdAt": now.UTC().Format(time.RFC3339),
	}
}

// Subscriber is a newsletter signup. Best-effort write-once; duplicate
// emails are not checked (see DESIGN.md).
type Subscriber struct {
	Email string
}

// DocumentData builds the stored record for a new subscriber.
func (s Subscriber) DocumentData() map[string]any {
	return map[string]any{
		"email":  s.Email,
		"active": true,
	}
}
