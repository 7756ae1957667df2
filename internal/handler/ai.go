package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/todotask/backend/internal/config"
	"github.com/todotask/backend/internal/middleware"
	"github.com/todotask/backend/internal/repository"
)

// AIHandler calls an OpenAI-compatible chat-completions API to produce
// a short productivity summary of the caller's tasks.  The upstream is
// strictly best-effort: any failure degrades to a 502 with a friendly
// message instead of breaking the dashboard.
type AIHandler struct {
	Cfg    config.Config
	Tasks  *repository.TaskRepo
	Client *http.Client
}

func NewAIHandler(cfg config.Config, t *repository.TaskRepo) *AIHandler {
	return &AIHandler{Cfg: cfg, Tasks: t, Client: &http.Client{Timeout: 20 * time.Second}}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Summary builds the prompt from the user's task list and relays the
// model's answer.
func (h *AIHandler) Summary(c echo.Context) error {
	uid := middleware.CurrentUserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.Tasks.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if len(tasks) == 0 {
		return c.JSON(http.StatusOK, echo.Map{"summary": "You don't have any tasks yet. Add tasks to receive analysis."})
	}
	if h.Cfg.AIAPIKey == "" {
		return c.JSON(http.StatusOK, echo.Map{"summary": "AI summary is not configured."})
	}

	var sb strings.Builder
	for _, t := range tasks {
		fmt.Fprintf(&sb, "- %s | Priority: %s | Status: %s\n", t.Title, t.Priority, t.Status)
	}
	prompt := fmt.Sprintf(`Analyze these tasks and provide:
1) A short productivity summary
2) Weak areas / what to improve
3) Actionable suggestions

Tasks:
%s`, sb.String())

	body, err := json.Marshal(chatRequest{
		Model:    h.Cfg.AIModel,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "encode request failed"})
	}

	url := strings.TrimSuffix(h.Cfg.AIBaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(c.Request().Context(), http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "build request failed"})
	}
	req.Header.Set("Authorization", "Bearer "+h.Cfg.AIAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "summary unavailable"})
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "summary unavailable"})
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || len(out.Choices) == 0 {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "summary unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"summary": out.Choices[0].Message.Content})
}
