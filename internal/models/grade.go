package models

// Grade is a standards-referenced grade band.
type Grade string

const (
	GradeA1 Grade = "A1"
	GradeB2 Grade = "B2"
	GradeB3 Grade = "B3"
	GradeC4 Grade = "C4"
	GradeC5 Grade = "C5"
	GradeC6 Grade = "C6"
	GradeD7 Grade = "D7"
	GradeE8 Grade = "E8"
	GradeF9 Grade = "F9"

	// Early-years (daycare) bands.
	GradeDaycareHigh        Grade = "G"
	GradeDaycareSufficient  Grade = "S"
	GradeDaycareApproaching Grade = "B"
)

// WorstGradeValue is the numeric value of F9, the worst band.
const WorstGradeValue = 9

// StandardGrades lists the nine bands from best to worst.
var StandardGrades = []Grade{
	GradeA1, GradeB2, GradeB3, GradeC4, GradeC5, GradeC6, GradeD7, GradeE8, GradeF9,
}

// Value returns the rank of g (A1 = 1 ... F9 = 9), or 0 for non-standard bands.
func (g Grade) Value() int {
	for i, sg := range StandardGrades {
		if sg == g {
			return i + 1
		}
	}
	return 0
}

func (g Grade) String() string {
	return string(g)
}

// Category is the overall performance classification from a best-six aggregate.
type Category string

const (
	CategoryDistinction Category = "Distinction"
	CategoryMerit       Category = "Merit"
	CategoryPass        Category = "Pass"
	CategoryFail        Category = "Fail"
)

// Categories lists every category from best to worst.
var Categories = []Category{CategoryDistinction, CategoryMerit, CategoryPass, CategoryFail}
