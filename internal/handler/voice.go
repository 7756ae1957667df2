package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type voiceCommandReq struct {
	Text string `json:"text"`
}

type voiceCommandResp struct {
	Reply  string `json:"reply"`
	Action string `json:"action,omitempty"`
}

// voiceRoute maps a set of trigger phrases to a reply and a frontend
// action.  First match wins, so more specific phrases come first.
type voiceRoute struct {
	triggers []string
	reply    string
	action   string
}

var voiceRoutes = []voiceRoute{
	{[]string{"create task", "add task"}, "Opening task creation…", "open_add_task"},
	{[]string{"dashboard", "go to dashboard"}, "Opening dashboard…", "open_dashboard"},
	{[]string{"open tasks", "show my tasks"}, "Opening tasks list…", "open_tasks"},
	{[]string{"kanban", "kanban board"}, "Opening Kanban…", "open_kanban"},
	{[]string{"open analytics", "analytics"}, "Opening analytics…", "open_analytics"},
	{[]string{"open profile", "profile"}, "Opening your profile…", "open_profile"},
}

// VoiceCommand does plain keyword matching over the transcribed text
// and tells the frontend where to navigate.  No NLP — the command set
// is small and fixed.
func VoiceCommand(c echo.Context) error {
	var req voiceCommandReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	text := strings.ToLower(req.Text)

	for _, r := range voiceRoutes {
		for _, trig := range r.triggers {
			if strings.Contains(text, trig) {
				return c.JSON(http.StatusOK, voiceCommandResp{Reply: r.reply, Action: r.action})
			}
		}
	}

	if strings.Contains(text, "hello") || strings.Contains(text, "hi") {
		return c.JSON(http.StatusOK, voiceCommandResp{Reply: "Hello! How can I assist you?"})
	}

	return c.JSON(http.StatusOK, voiceCommandResp{Reply: "I heard: " + req.Text})
}
