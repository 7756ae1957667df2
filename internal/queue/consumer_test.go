package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeReminder(t *testing.T) {
	t.Parallel()

	ev := TaskReminderEvent{
		Name:  "Alice",
		Email: "alice@x.com",
		Overdue: []ReminderTask{
			{Title: "File taxes", DueDate: "2026-04-15"},
		},
		DueTomorrow: []ReminderTask{
			{Title: "Water plants"},
		},
	}

	subject, body := composeReminder(ev)
	assert.Equal(t, "Task reminders", subject)
	assert.Contains(t, body, "Hi Alice,")
	assert.Contains(t, body, "File taxes (was due 2026-04-15)")
	assert.Contains(t, body, "These tasks are due tomorrow:")
	assert.Contains(t, body, "Water plants")
}

func TestComposeReminder_NoName(t *testing.T) {
	t.Parallel()

	_, body := composeReminder(TaskReminderEvent{Email: "x@y.com"})
	assert.Contains(t, body, "Hi there,")
}

func TestHandleMessage_BadPayload(t *testing.T) {
	t.Parallel()

	err := handleMessage([]byte("{not json"), nil)
	require.Error(t, err)

	// valid JSON but no recipient
	err = handleMessage([]byte(`{"user_id":1}`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without email")
}
