package student

// Grade is the letter grade matching a percentage band.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// Band is the lowest percentage (inclusive) earning Grade.
type Band struct {
	Min   float64
	Grade Grade
}

// Bands are ordered highest first; the first band whose Min is reached wins.
var Bands = []Band{
	{Min: 90, Grade: GradeAPlus},
	{Min: 80, Grade: GradeA},
	{Min: 70, Grade: GradeBPlus},
	{Min: 60, Grade: GradeB},
	{Min: 50, Grade: GradeC},
	{Min: 40, Grade: GradeD},
}

// GradeFor maps a percentage to its Grade.
func GradeFor(percentage float64) Grade {
	for _, band := range Bands {
		if percentage >= band.Min {
			return band.Grade
		}
	}
	return GradeF
}
