package cohort

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spboyer/scorecard/internal/models"
)

// Row represents a single CSV row with column name to value mapping.
type Row map[string]string

// remarkPrefix marks a facilitator note column, e.g. "remark.Mathematics".
const remarkPrefix = "remark."

// recordColumns are the non-subject columns of a master sheet. Their names
// match the mapstructure tags on csvStudent.
var recordColumns = map[string]bool{
	"id":             true,
	"name":           true,
	"finalRemark":    true,
	"overallRemark":  true,
	"recommendation": true,
	"attendance":     true,
	"age":            true,
	"promotedTo":     true,
	"conduct":        true,
	"interest":       true,
	"skills":         true,
}

type csvStudent struct {
	ID             int    `mapstructure:"id"`
	Name           string `mapstructure:"name"`
	FinalRemark    string `mapstructure:"finalRemark"`
	OverallRemark  string `mapstructure:"overallRemark"`
	Recommendation string `mapstructure:"recommendation"`

	models.PassThrough `mapstructure:",squash"`
}

// ReadCSV reads a CSV file and returns rows as maps of column to value.
// The first row is treated as headers (column names), which are returned
// in file order.
func ReadCSV(path string) ([]string, []Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv: %s is empty (no header row)", path)
	}

	headers := records[0]
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}
	rows := make([]Row, 0, len(records)-1)

	for i, record := range records[1:] {
		if len(record) != len(headers) {
			return nil, nil, fmt.Errorf("csv: row %d has %d columns, expected %d", i+2, len(record), len(headers))
		}
		row := make(Row, len(headers))
		for j, h := range headers {
			row[h] = strings.TrimSpace(record[j])
		}
		rows = append(rows, row)
	}

	return headers, rows, nil
}

// LoadStudentsCSV imports a master sheet. Besides the record columns it
// understands one column per subject holding the flat score,
// "<Subject>.sectionA"/"<Subject>.sectionB" breakdown columns and
// "remark.<Subject>" facilitator notes. The subjects are returned in the
// order their first column appears. Blank score cells are left unrecorded.
func LoadStudentsCSV(path string) ([]models.StudentRecord, []string, error) {
	headers, rows, err := ReadCSV(path)
	if err != nil {
		return nil, nil, err
	}

	subjects := subjectColumns(headers)

	students := make([]models.StudentRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := decodeStudent(row)
		if err != nil {
			return nil, nil, fmt.Errorf("csv: %s row %d: %w", path, i+2, err)
		}
		students = append(students, rec)
	}
	return students, subjects, nil
}

func subjectColumns(headers []string) []string {
	var subjects []string
	seen := map[string]bool{}
	for _, h := range headers {
		if h == "" || recordColumns[h] || strings.HasPrefix(h, remarkPrefix) {
			continue
		}
		subject, _, _ := splitBreakdown(h)
		if !seen[subject] {
			seen[subject] = true
			subjects = append(subjects, subject)
		}
	}
	return subjects
}

// breakdownFields are the column suffixes that address a ScoreDetail field.
var breakdownFields = map[string]bool{"sectionA": true, "sectionB": true, "total": true}

// splitBreakdown splits "Science.sectionA" into ("Science", "sectionA", true).
// Subjects whose own name contains dots ("I.C.T") are left alone.
func splitBreakdown(column string) (subject, field string, ok bool) {
	i := strings.LastIndex(column, ".")
	if i <= 0 || !breakdownFields[column[i+1:]] {
		return column, "", false
	}
	return column[:i], column[i+1:], true
}

func decodeStudent(row Row) (models.StudentRecord, error) {
	fields := map[string]string{}
	flat := map[string]string{}
	breakdowns := map[string]map[string]string{}
	subjectRemarks := map[string]string{}

	for col, val := range row {
		switch {
		case col == "":
		case recordColumns[col]:
			fields[col] = val
		case strings.HasPrefix(col, remarkPrefix):
			if val != "" {
				subjectRemarks[strings.TrimPrefix(col, remarkPrefix)] = val
			}
		case val == "":
			// unrecorded score
		default:
			if subject, field, ok := splitBreakdown(col); ok {
				if breakdowns[subject] == nil {
					breakdowns[subject] = map[string]string{}
				}
				breakdowns[subject][field] = val
				continue
			}
			flat[col] = val
		}
	}

	if fields["id"] == "" {
		return models.StudentRecord{}, fmt.Errorf("missing id")
	}

	var cs csvStudent
	if err := mapstructure.WeakDecode(fields, &cs); err != nil {
		return models.StudentRecord{}, fmt.Errorf("decoding student fields: %w", err)
	}

	rec := models.StudentRecord{
		ID:             cs.ID,
		Name:           cs.Name,
		FinalRemark:    cs.FinalRemark,
		OverallRemark:  cs.OverallRemark,
		Recommendation: cs.Recommendation,
		PassThrough:    cs.PassThrough,
	}

	if len(flat) > 0 {
		if err := mapstructure.WeakDecode(flat, &rec.Scores); err != nil {
			return models.StudentRecord{}, fmt.Errorf("decoding scores: %w", err)
		}
	}
	for subject, parts := range breakdowns {
		var d models.ScoreDetail
		if err := mapstructure.WeakDecode(parts, &d); err != nil {
			return models.StudentRecord{}, fmt.Errorf("decoding %s breakdown: %w", subject, err)
		}
		if rec.ScoreDetails == nil {
			rec.ScoreDetails = map[string]models.ScoreDetail{}
		}
		rec.ScoreDetails[subject] = d
	}
	if len(subjectRemarks) > 0 {
		rec.SubjectRemarks = subjectRemarks
	}
	return rec, nil
}
