// Package export выгружает список задач в JSON, CSV или PDF.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"taskboard/pkg/tasks"

	"github.com/jung-kurt/gofpdf"
)

// Formats - поддерживаемые форматы выгрузки.
var Formats = []string{"json", "csv", "pdf"}

type jsonRow struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Export сериализует задачи в указанном формате.
func Export(list []tasks.Task, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		rows := make([]jsonRow, 0, len(list))
		for _, t := range list {
			r := jsonRow{
				ID:          t.ID.String(),
				Title:       t.Title,
				Description: t.Description,
				Status:      string(t.Status),
				CreatedAt:   t.CreatedAt,
			}
			if !t.UpdatedAt.IsZero() {
				u := t.UpdatedAt
				r.UpdatedAt = &u
			}
			rows = append(rows, r)
		}
		return json.MarshalIndent(rows, "", "  ")
	case "csv":
		return renderCSV(list)
	case "pdf":
		return renderPDF(list)
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

// CSVHeader - первая строка CSV-выгрузки.
var CSVHeader = []string{"id", "title", "description", "status", "created_at", "updated_at"}

func renderCSV(list []tasks.Task) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)
	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range list {
		row := []string{t.ID.String(), t.Title, t.Description, string(t.Status), stamp(t.CreatedAt), stamp(t.UpdatedAt)}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row %s: %w", t.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return b.Bytes(), nil
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func renderPDF(list []tasks.Task) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 7, "Title", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Status", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, "Created", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 7, "Updated", "1", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, t := range list {
		pdf.CellFormat(70, 7, truncate(t.Title, 40), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, t.Status.Label(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, t.CreatedAt.Format("2006-01-02 15:04"), "1", 0, "L", false, 0, "")
		updated := "-"
		if !t.UpdatedAt.IsZero() {
			updated = t.UpdatedAt.Format("2006-01-02 15:04")
		}
		pdf.CellFormat(45, 7, updated, "1", 1, "L", false, 0, "")
		if t.Description != "" {
			pdf.SetFont("Arial", "I", 9)
			pdf.MultiCell(0, 5, t.Description, "0", "L", false)
			pdf.SetFont("Arial", "", 10)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
