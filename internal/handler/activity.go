package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/todotask/backend/internal/middleware"
	"github.com/todotask/backend/internal/repository"
)

// ActivityHandler serves the activity-log read endpoint.
type ActivityHandler struct {
	Activities *repository.ActivityRepo
}

func NewActivityHandler(a *repository.ActivityRepo) *ActivityHandler {
	return &ActivityHandler{Activities: a}
}

type activityResp struct {
	Action      string `json:"action"`
	Description string `json:"description"`
	IP          string `json:"ip"`
	Device      string `json:"device"`
	Time        string `json:"time"`
}

// List returns the caller's activity entries, newest first, with the
// raw User-Agent collapsed to a browser name and the timestamp
// formatted for display.
func (h *ActivityHandler) List(c echo.Context) error {
	uid := middleware.CurrentUserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	logs, err := h.Activities.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	out := make([]activityResp, 0, len(logs))
	for _, a := range logs {
		ip := a.IP
		if ip == "" {
			ip = "Unknown"
		}
		out = append(out, activityResp{
			Action:      a.Action,
			Description: a.Description,
			IP:          ip,
			Device:      cleanDeviceName(a.Device),
			Time:        a.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// cleanDeviceName collapses a User-Agent string to a browser name.
// Order matters: Chrome's UA contains "Safari", Edge's contains both.
func cleanDeviceName(device string) string {
	if device == "" {
		return "Unknown"
	}
	d := strings.ToLower(device)
	switch {
	case strings.Contains(d, "edg"):
		return "Microsoft Edge"
	case strings.Contains(d, "opr"), strings.Contains(d, "opera"):
		return "Opera"
	case strings.Contains(d, "chrome"):
		return "Chrome"
	case strings.Contains(d, "firefox"):
		return "Firefox"
	case strings.Contains(d, "safari"):
		return "Safari"
	}
	return "Unknown"
}
