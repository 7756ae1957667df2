package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoiceCommand(t *testing.T) {
	t.Parallel()

	cases := []struct {
		text   string
		action string
		reply  string
	}{
		{"please create task for tomorrow", "open_add_task", "Opening task creation…"},
		{"Add Task buy milk", "open_add_task", "Opening task creation…"},
		{"take me to the dashboard", "open_dashboard", "Opening dashboard…"},
		{"show my tasks", "open_tasks", "Opening tasks list…"},
		{"open the kanban board", "open_kanban", "Opening Kanban…"},
		{"analytics please", "open_analytics", "Opening analytics…"},
		{"open profile", "open_profile", "Opening your profile…"},
		{"hello there", "", "Hello! How can I assist you?"},
		{"what is the weather", "", "I heard: what is the weather"},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			body := fmt.Sprintf(`{"text":%q}`, tc.text)
			c, rec := doJSON(t, http.MethodPost, "/voice/command", body, nil)
			require.NoError(t, VoiceCommand(c))
			require.Equal(t, http.StatusOK, rec.Code)

			var resp voiceCommandResp
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.action, resp.Action)
			assert.Equal(t, tc.reply, resp.Reply)
		})
	}
}
