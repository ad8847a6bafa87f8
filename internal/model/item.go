package model

import "time"

// Kind discriminates the two schedulable shapes handled by the engine.
type Kind string

const (
	KindTask        Kind = "task"
	KindAppointment Kind = "appointment"
)

// Item is one schedulable occurrence: a task with a due time or an
// appointment with a reminder time. Recurring items spawn a fresh Item
// per occurrence; occurrences are linked only by their shared recurrence
// parameters, never by a parent reference.
type Item struct {
	ID          string `gorm:"primaryKey"`
	UserID      uint   `gorm:"index"`
	Kind        Kind   `gorm:"index;default:task"`
	Title       string
	Description string
	Location    string // appointment variant only
	DueAt       time.Time `gorm:"index"`
	IsRecurring bool      `gorm:"default:false"`
	// RecurEveryDays and RecurUntil are meaningful only when IsRecurring is set.
	RecurEveryDays int
	RecurUntil     time.Time
	// Done is the terminal flag (task completed / reminder delivered).
	// It moves strictly false -> true and is never reset.
	Done      bool `gorm:"default:false;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NextDueAt returns the trigger instant of the follow-on occurrence.
func (i Item) NextDueAt() time.Time {
	return i.DueAt.AddDate(0, 0, i.RecurEveryDays)
}

// CanRecur reports whether completing this item at the given instant
// should spawn a successor: the recurrence must not have expired and the
// next occurrence must still fall within the recurrence end date.
func (i Item) CanRecur(now time.Time) bool {
	if !i.IsRecurring || i.RecurEveryDays <= 0 {
		return false
	}
	if !i.RecurUntil.After(now) {
		return false
	}
	return !i.NextDueAt().After(i.RecurUntil)
}
