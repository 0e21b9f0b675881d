package notifications

import (
	"errors"
	"time"
)

const (
	TitleTomorrowPlan  = "Tomorrow's Plan Ready 📅"
	TitleCoachUpdate   = "Coach Update 🤖"
	TitleMissedWorkout = "Missed Workout ⚠️"

	TypeInfo       = "info"
	TypePlan       = "plan"
	TypeMotivation = "motivation"
	TypeAlert      = "alert"

	ListLimit = 20

	createdAtLayout = "2006-01-02 15:04"
)

var ErrNotificationNotFound = errors.New("notification not found")

type Notification struct {
	ID        int
	UserID    int
	Title     string
	Message   string
	Type      string
	IsRead    bool
	Payload   map[string]any
	CreatedAt time.Time
}

// Item is the wire form of a notification.
type Item struct {
	ID        int            `json:"id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	IsRead    bool           `json:"is_read"`
	CreatedAt string         `json:"created_at"`
	Payload   map[string]any `json:"payload"`
}

func (n Notification) Item() Item {
	return Item{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.UTC().Format(createdAtLayout),
		Payload:   n.Payload,
	}
}
