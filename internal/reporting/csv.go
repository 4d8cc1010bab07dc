package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/spboyer/scorecard/internal/models"
)

// WriteMasterSheetCSV writes one row per student in rank order. Each
// subject contributes a score and a grade column.
func WriteMasterSheetCSV(w io.Writer, rep *models.Report) error {
	cw := csv.NewWriter(w)

	header := []string{"rank", "id", "name"}
	for _, subject := range rep.Subjects {
		header = append(header, subject, subject+".grade")
	}
	header = append(header, "total", "aggregate", "category", "overallRemark", "recommendation")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, s := range rep.Students {
		row := []string{strconv.Itoa(s.Rank), strconv.Itoa(s.ID), s.Name}
		for _, subject := range rep.Subjects {
			if cs, ok := s.Subject(subject); ok {
				row = append(row, strconv.Itoa(cs.Score), string(cs.Grade))
			} else {
				row = append(row, "", "")
			}
		}
		row = append(row,
			strconv.Itoa(s.TotalScore),
			strconv.Itoa(s.BestSixAggregate),
			string(s.Category),
			s.OverallRemark,
			s.Recommendation)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", s.Name, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
