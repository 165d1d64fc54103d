// Package export renders the candidate pool as an XLSX workbook.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hireflow/backend/models"
)

// Sheet names
const (
	CandidatesSheet = "Candidates"
	SummarySheet    = "Summary"
)

// ContentType is the MIME type of the generated workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var candidateHeaders = []string{"Name", "Email", "Role", "Status", "Score", "Career Level", "Skills", "Strengths", "Missing Skills", "Resume", "Created"}

// Filename returns a dated download name for the report
func Filename(now time.Time) string {
	return fmt.Sprintf("candidates-%s.xlsx", now.Format("2006-01-02"))
}

// WriteCandidates writes a workbook with one row per candidate and a
// summary sheet of per-status counts
func WriteCandidates(w io.Writer, candidates []*models.Candidate, generatedAt time.Time) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CandidatesSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := writeCandidatesSheet(f, candidates); err != nil {
		return fmt.Errorf("failed to create candidates sheet: %w", err)
	}
	if err := writeSummarySheet(f, models.Summarize(candidates), generatedAt); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeCandidatesSheet(f *excelize.File, candidates []*models.Candidate) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	// score bands share the dashboard's recommendation thresholds
	bands := []struct {
		min   int
		color string
	}{
		{85, "C6EFCE"},
		{70, "FFEB9C"},
		{50, "FFC7CE"},
		{0, "FF9999"},
	}
	bandStyles := make([]int, len(bands))
	for i, b := range bands {
		bandStyles[i], err = f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{b.color}, Pattern: 1},
		})
		if err != nil {
			return err
		}
	}

	for col, header := range candidateHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(CandidatesSheet, cell, header); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(CandidatesSheet, "A1", "K1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(CandidatesSheet, "A", "C", 25); err != nil {
		return err
	}
	if err := f.SetColWidth(CandidatesSheet, "G", "I", 40); err != nil {
		return err
	}

	for i, c := range candidates {
		row := i + 2
		score := ""
		if c.IsScored() {
			score = fmt.Sprintf("%d", *c.Score)
		}
		values := []interface{}{
			c.Name,
			c.Email,
			c.Role,
			string(c.Status),
			score,
			c.ExtractedData.CareerLevel,
			strings.Join(c.ExtractedData.Skills, ", "),
			strings.Join(c.Analysis.Strengths, ", "),
			strings.Join(c.Analysis.MissingSkills, ", "),
			c.ResumeName,
			c.CreatedAt.Format(time.RFC3339),
		}
		if err := f.SetSheetRow(CandidatesSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}

		if c.ResumeURL != "" {
			cell := fmt.Sprintf("J%d", row)
			if err := f.SetCellHyperLink(CandidatesSheet, cell, c.ResumeURL, "External"); err != nil {
				return err
			}
		}

		if c.IsScored() {
			for j, b := range bands {
				if *c.Score >= b.min {
					cell := fmt.Sprintf("E%d", row)
					if err := f.SetCellStyle(CandidatesSheet, cell, cell, bandStyles[j]); err != nil {
						return err
					}
					break
				}
			}
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, stats models.CandidateStats, generatedAt time.Time) error {
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Generated", generatedAt.Format(time.RFC3339)},
		{"Total candidates", stats.Total},
		{"Scored candidates", stats.Scored},
		{"Average score", stats.AverageScore},
		{},
		{"Status", "Count"},
	}
	for _, s := range models.AllStatuses {
		rows = append(rows, []interface{}{string(s), stats.ByStatus[s]})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &row); err != nil {
			return err
		}
		if err := f.SetCellStyle(SummarySheet, cell, cell, labelStyle); err != nil {
			return err
		}
	}
	return f.SetColWidth(SummarySheet, "A", "A", 22)
}
