package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/labstack/echo/v4"

	"github.com/todotask/backend/internal/config"
	"github.com/todotask/backend/internal/model"
	"github.com/todotask/backend/internal/repository"
	"github.com/todotask/backend/internal/utils"
)

// ExportHandler serves the CSV/PDF download endpoints.  Browsers follow
// these links directly, without an Authorization header, so the bearer
// token is accepted as a ?token= query parameter and verified here
// instead of in the JWT middleware.
type ExportHandler struct {
	Cfg   config.Config
	Tasks *repository.TaskRepo
}

func NewExportHandler(cfg config.Config, t *repository.TaskRepo) *ExportHandler {
	return &ExportHandler{Cfg: cfg, Tasks: t}
}

// userFromQueryToken resolves the calling user from the ?token= query
// parameter.  A zero return means the response has already been written.
func (h *ExportHandler) userFromQueryToken(c echo.Context) uint64 {
	raw := c.QueryParam("token")
	if raw == "" {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "token missing"})
		return 0
	}
	uid, err := utils.ParseAccessToken(h.Cfg.JWTSecret, raw)
	if err != nil || uid == 0 {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
		return 0
	}
	return uid
}

// CSV streams the caller's tasks as a tasks.csv attachment.
func (h *ExportHandler) CSV(c echo.Context) error {
	uid := h.userFromQueryToken(c)
	if uid == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.Tasks.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Title", "Description", "Priority", "Date", "Status"})
	for _, t := range tasks {
		_ = w.Write([]string{t.Title, t.Description, t.Priority, t.DueDate, t.Status})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "render csv failed"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=tasks.csv`)
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

// PDF renders the caller's tasks as a one-page-per-overflow report.
func (h *ExportHandler) PDF(c echo.Context) error {
	uid := h.userFromQueryToken(c)
	if uid == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.Tasks.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	buf, err := renderTaskPDF(tasks)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "render pdf failed"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=tasks.pdf`)
	return c.Blob(http.StatusOK, "application/pdf", buf)
}

func renderTaskPDF(tasks []model.Task) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 20, "Task Report")
	pdf.Ln(30)

	pdf.SetFont("Helvetica", "", 11)
	for _, t := range tasks {
		line := fmt.Sprintf("%s | %s | %s", t.Title, t.Priority, t.Status)
		pdf.MultiCell(0, 16, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
