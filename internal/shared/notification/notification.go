// Package notification gives validated objects an ordered list of
// human-readable violations instead of failing on the first broken rule.
package notification

import "strings"

// Validatable produces a fresh violation list from its current state.
type Validatable interface {
	Violations() []string
}

// Notifiable is meant to be embedded by aggregates that validate themselves.
// The zero value is valid and empty.
type Notifiable struct {
	notifications []string
}

// AddNotification appends message. Blank messages are dropped.
func (n *Notifiable) AddNotification(message string) {
	if strings.TrimSpace(message) == "" {
		return
	}
	n.notifications = append(n.notifications, message)
}

func (n *Notifiable) AddNotifications(messages ...string) {
	for _, m := range messages {
		n.AddNotification(m)
	}
}

func (n *Notifiable) ClearNotifications() {
	n.notifications = nil
}

// Notifications returns a copy in insertion order. Duplicates are kept.
func (n *Notifiable) Notifications() []string {
	out := make([]string, len(n.notifications))
	copy(out, n.notifications)
	return out
}

func (n *Notifiable) IsValid() bool {
	return len(n.notifications) == 0
}

// Revalidate replaces the current notifications with v's violations.
func (n *Notifiable) Revalidate(v Validatable) {
	n.ClearNotifications()
	n.AddNotifications(v.Violations()...)
}
