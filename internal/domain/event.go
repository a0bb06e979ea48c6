package domain

import (
	"sort"
	"time"
)

// EventStatus is the lifecycle of a club event.
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
)

// Event is a club event. Read-only from the serving path.
type Event struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Date             string      `json:"date"`
	Time             string      `json:"time,omitempty"`
	Location         string      `json:"location,omitempty"`
	ImageID          string      `json:"imageId,omitempty"`
	ImageURL         string      `json:"imageUrl,omitempty"`
	RegistrationLink string      `json:"registrationLink,omitempty"`
	Status           EventStatus `json:"status"`
	CreatedAt        string      `json:"createdAt,omitempty"`
}

// EventFromDocument projects a stored event record into an Event, deriving
// the poster image URL when an image is attached.
func EventFromDocument(d Document, files FileURLResolver, bucket string) Event {
	e := Event{
		ID:               d.ID,
		Title:            d.String("title"),
		Description:      d.String("description"),
		Date:             d.String("date"),
		Time:             d.String("time"),
		Location:         d.String("location"),
		ImageID:          d.String("imageId"),
		RegistrationLink: d.String("registrationLink"),
		Status:           EventStatus(d.String("status")),
		CreatedAt:        d.CreatedAt,
	}
	if e.ImageID != "" {
		e.ImageURL = files.FileViewURL(bucket, e.ImageID)
	}
	return e
}

// eventTime parses the stored date, accepting RFC3339 or a bare date.
// Unparseable dates sort as the zero time and count as past.
func eventTime(e Event) time.Time {
	if t, err := time.Parse(time.RFC3339, e.Date); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", e.Date); err == nil {
		return t
	}
	return time.Time{}
}

// SplitEvents sorts events newest-first and partitions them into upcoming
// (still scheduled and not yet started) and past.
func SplitEvents(events []Event, now time.Time) (upcoming, past []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return eventTime(events[i]).After(eventTime(events[j]))
	})
	for _, e := range events {
		if e.Status == EventUpcoming && !eventTime(e).Before(now) {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}
	return upcoming, past
}
