package notification_test

import (
	"testing"

	"go-employee-api/internal/shared/notification"

	"github.com/stretchr/testify/assert"
)

type staticRules []string

func (s staticRules) Violations() []string { return s }

func TestNotifiable(t *testing.T) {
	t.Run("zero value is valid", func(t *testing.T) {
		var n notification.Notifiable
		assert.True(t, n.IsValid())
		assert.Empty(t, n.Notifications())
	})

	t.Run("blank messages are dropped", func(t *testing.T) {
		var n notification.Notifiable
		n.AddNotification("")
		n.AddNotification("   ")
		n.AddNotification("\t\n")
		assert.True(t, n.IsValid())
	})

	t.Run("keeps order and duplicates", func(t *testing.T) {
		var n notification.Notifiable
		n.AddNotifications("b", "a", " ", "b")
		assert.False(t, n.IsValid())
		assert.Equal(t, []string{"b", "a", "b"}, n.Notifications())
	})

	t.Run("notifications view is a copy", func(t *testing.T) {
		var n notification.Notifiable
		n.AddNotification("first")
		view := n.Notifications()
		view[0] = "changed"
		assert.Equal(t, []string{"first"}, n.Notifications())
	})

	t.Run("clear empties the list", func(t *testing.T) {
		var n notification.Notifiable
		n.AddNotification("x")
		n.ClearNotifications()
		assert.True(t, n.IsValid())
	})

	t.Run("revalidate replaces instead of accumulating", func(t *testing.T) {
		var n notification.Notifiable
		rules := staticRules{"one", "two"}
		n.Revalidate(rules)
		n.Revalidate(rules)
		assert.Equal(t, []string{"one", "two"}, n.Notifications())

		n.Revalidate(staticRules{})
		assert.True(t, n.IsValid())
	})
}
