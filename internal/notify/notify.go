package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"reminder-engine/internal/model"
)

// ErrNoRecipient is returned when a contact carries no address the
// gateway can deliver to.
var ErrNoRecipient = errors.New("no usable recipient address")

// Gateway delivers a single reminder message. Implementations must
// return a non-nil error when delivery was not acknowledged so the item
// stays pending for the next scan.
type Gateway interface {
	Send(ctx context.Context, to model.Contact, subject, body string) error
}

// BuildMessage renders the reminder subject and body for an item. The
// wording follows the item kind; appointments mention the location when
// one was recorded.
func BuildMessage(item model.Item) (subject, body string) {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = "your reminder"
	}

	var sb strings.Builder
	switch item.Kind {
	case model.KindAppointment:
		subject = fmt.Sprintf("Appointment reminder: %s", title)
		fmt.Fprintf(&sb, "Your appointment %q is scheduled for %s.", title, item.DueAt.Format("Mon, 02 Jan 2006 15:04"))
		if loc := strings.TrimSpace(item.Location); loc != "" {
			fmt.Fprintf(&sb, "\nLocation: %s", loc)
		}
	default:
		subject = fmt.Sprintf("Task reminder: %s", title)
		fmt.Fprintf(&sb, "Your task %q is due at %s.", title, item.DueAt.Format("Mon, 02 Jan 2006 15:04"))
	}
	if desc := strings.TrimSpace(item.Description); desc != "" {
		fmt.Fprintf(&sb, "\n\n%s", desc)
	}
	return subject, sb.String()
}
