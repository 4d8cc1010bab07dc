package processing

import (
	"testing"

	"github.com/spboyer/scorecard/internal/models"
	"github.com/spboyer/scorecard/internal/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mathCohort() []models.StudentRecord {
	return []models.StudentRecord{
		{ID: 3, Name: "Esi", Scores: map[string]int{"Math": 50}},
		{ID: 1, Name: "Kofi", Scores: map[string]int{"Math": 90}},
		{ID: 2, Name: "Ama", Scores: map[string]int{"Math": 70}},
	}
}

func TestProcessStudents_ThreeStudentExample(t *testing.T) {
	cohort := mathCohort()
	subjects := []string{"Math"}
	settings := models.Settings{CoreSubjects: []string{"Math"}, ScienceBaseScore: 100}
	stats := statistics.ComputeClassStatistics(cohort, subjects, settings.ScienceBaseScore)

	got := ProcessStudents(stats, cohort, subjects, settings)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Kofi", "Ama", "Esi"}, names(got))
	assert.Equal(t, models.GradeB2, got[0].Subjects[0].Grade)
	assert.Equal(t, models.GradeC4, got[1].Subjects[0].Grade)
	assert.Equal(t, models.GradeD7, got[2].Subjects[0].Grade)
	assert.Equal(t, []int{2, 4, 7}, aggregates(got))
	assert.Equal(t, []int{1, 2, 3}, ranks(got))

	esi := got[2]
	assert.Equal(t, "Needs urgent improvement in: Math.", esi.WeaknessAnalysis)
	assert.Equal(t,
		"Needs urgent improvement in: Math.\n\nOverall performance: Distinction with an aggregate of 7. Excellent work; keep it up.",
		esi.OverallRemark)
	assert.Equal(t, "Pass", esi.Subjects[0].Remark)
	assert.Equal(t, FacilitatorTBA, esi.Subjects[0].Facilitator)
	assert.Equal(t, DefaultRecommendation, esi.Recommendation)
}

func TestProcessStudents_ManualSubjectRemarkOverridesScoreBand(t *testing.T) {
	cohort := mathCohort()
	cohort[1].SubjectRemarks = map[string]string{"Math": "  Brilliant in algebra "}
	cohort[2].SubjectRemarks = map[string]string{"Math": "   "}
	subjects := []string{"Math"}
	settings := models.Settings{CoreSubjects: []string{"Math"}, ScienceBaseScore: 100}
	stats := statistics.ComputeClassStatistics(cohort, subjects, settings.ScienceBaseScore)

	got := ProcessStudents(stats, cohort, subjects, settings)

	kofi, ama := got[0], got[1]
	require.Equal(t, "Kofi", kofi.Name)
	assert.Equal(t, "Brilliant in algebra", kofi.Subjects[0].Remark)
	assert.Equal(t, "Very Good", kofi.Subjects[0].GradeRemark)
	assert.Contains(t, kofi.OverallRemark, "[Facilitator Notes: Math: Brilliant in algebra]")

	require.Equal(t, "Ama", ama.Name)
	assert.Equal(t, "Very Good", ama.Subjects[0].Remark, "blank remark falls back to the score band")
}

func TestProcessStudents_ScienceNormalizationMatchesStatistics(t *testing.T) {
	cohort := []models.StudentRecord{
		{ID: 1, Scores: map[string]int{"Science": 0}, ScoreDetails: map[string]models.ScoreDetail{"Science": {SectionA: 30, SectionB: 50}}},
		{ID: 2, Scores: map[string]int{"Science": 57}},
	}
	subjects := []string{"Science"}
	settings := models.Settings{ScienceBaseScore: 140, CoreSubjects: []string{"Science"}}
	stats := statistics.ComputeClassStatistics(cohort, subjects, settings.ScienceBaseScore)

	got := ProcessStudents(stats, cohort, subjects, settings)

	for _, p := range got {
		assert.Equal(t, 57, p.Subjects[0].Score)
		assert.Equal(t, 57, p.TotalScore)
		assert.Equal(t, models.GradeC4, p.Subjects[0].Grade, "identical normalized scores have zero spread")
	}
}

func TestProcessStudents_SubjectOrderAndTotals(t *testing.T) {
	cohort := []models.StudentRecord{
		{ID: 1, Scores: map[string]int{"English Language": 60, "Math": 40, "French": 90}},
		{ID: 2, Scores: map[string]int{"English Language": 80}},
	}
	subjects := []string{"Math", "English Language", "French"}
	settings := models.Settings{CoreSubjects: []string{"Math", "English Language"}}
	stats := statistics.ComputeClassStatistics(cohort, subjects, 100)

	got := ProcessStudents(stats, cohort, subjects, settings)

	byID := map[int]models.ProcessedStudent{}
	for _, p := range got {
		byID[p.ID] = p
	}
	assert.Equal(t, 190, byID[1].TotalScore)
	assert.Equal(t, 80, byID[2].TotalScore)
	for _, p := range got {
		require.Len(t, p.Subjects, 3)
		assert.Equal(t, "Math", p.Subjects[0].Subject)
		assert.Equal(t, "English Language", p.Subjects[1].Subject)
		assert.Equal(t, "French", p.Subjects[2].Subject)
	}
	assert.Len(t, byID[1].BestCoreSubjects, 2)
	assert.Len(t, byID[1].BestElectiveSubjects, 1)
}

func TestProcessStudents_CopiesPassThroughFields(t *testing.T) {
	cohort := []models.StudentRecord{{
		ID:   7,
		Name: "Yaw",
		PassThrough: models.PassThrough{
			Attendance: "58/60",
			Age:        "14",
			PromotedTo: "JHS 3",
			Conduct:    "Respectful",
			Interest:   "Football",
			Skills:     "Leadership",
		},
	}}

	got := ProcessStudents(statistics.ComputeClassStatistics(cohort, nil, 100), cohort, nil, models.Settings{})

	require.Len(t, got, 1)
	assert.Equal(t, cohort[0].PassThrough, got[0].PassThrough)
	assert.Zero(t, got[0].BestSixAggregate)
	assert.Equal(t, models.CategoryDistinction, got[0].Category)
	assert.Empty(t, got[0].WeaknessAnalysis)
}

func TestProcessStudents_EmptyCohort(t *testing.T) {
	got := ProcessStudents(models.ClassStatistics{}, nil, []string{"Math"}, models.Settings{})
	assert.Empty(t, got)
}

func TestProcessStudents_RemarkMapAndRoster(t *testing.T) {
	cohort := mathCohort()
	subjects := []string{"Math"}
	settings := models.Settings{
		CoreSubjects:     []string{"Math"},
		GradingRemarks:   map[models.Grade]string{models.GradeB2: "Commendable"},
		Staff:            []models.StaffMember{{Name: "Mrs. Owusu", Subjects: []string{"Math"}}},
		FacilitatorNames: map[string]string{"Math": "Mr. Mensah"},
	}
	stats := statistics.ComputeClassStatistics(cohort, subjects, 100)

	got := ProcessStudents(stats, cohort, subjects, settings)

	assert.Equal(t, "Commendable", got[0].Subjects[0].GradeRemark)
	assert.Equal(t, "Credit", got[1].Subjects[0].GradeRemark)
	for _, p := range got {
		assert.Equal(t, "Mrs. Owusu", p.Subjects[0].Facilitator)
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		aggregate int
		want      models.Category
	}{
		{0, models.CategoryDistinction},
		{6, models.CategoryDistinction},
		{10, models.CategoryDistinction},
		{11, models.CategoryMerit},
		{20, models.CategoryMerit},
		{21, models.CategoryPass},
		{36, models.CategoryPass},
		{37, models.CategoryFail},
		{54, models.CategoryFail},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Categorize(tt.aggregate), "aggregate %d", tt.aggregate)
	}
}

func names(ps []models.ProcessedStudent) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func aggregates(ps []models.ProcessedStudent) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.BestSixAggregate
	}
	return out
}

func ranks(ps []models.ProcessedStudent) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.Rank
	}
	return out
}
