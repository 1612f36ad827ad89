package student

import (
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/matokeo/core"
)

// MaxSubjectMarks is the highest mark a single subject can score.
const MaxSubjectMarks = 100

// Student is a student's identity plus their subject -> marks results.
// Derived values (total, percentage, grade) are always computed from Results.
type Student struct {
	Name       string         `json:"name" yaml:"name"`
	RollNumber string         `json:"roll_number" yaml:"roll_number"`
	Results    map[string]int `json:"results" yaml:"results"`
}

func New(name, rollNumber string) *Student {
	return &Student{
		Name:       name,
		RollNumber: rollNumber,
		Results:    make(map[string]int),
	}
}

// AddResult sets the marks for subject, replacing any previous value.
func (s *Student) AddResult(subject string, marks int) {
	if s.Results == nil {
		s.Results = make(map[string]int)
	}
	s.Results[subject] = marks
}

func (s *Student) TotalMarks() int {
	var total int
	for _, marks := range s.Results {
		total += marks
	}
	return total
}

func (s *Student) SubjectCount() int {
	return len(s.Results)
}

// MaxMarks is the best total reachable with the current subjects.
func (s *Student) MaxMarks() int {
	return s.SubjectCount() * MaxSubjectMarks
}

func (s *Student) Percentage() float64 {
	maxMarks := s.MaxMarks()
	if maxMarks == 0 {
		return 0
	}
	return float64(s.TotalMarks()) / float64(maxMarks) * 100
}

func (s *Student) Grade() Grade {
	return GradeFor(s.Percentage())
}

// Subjects returns the subject names sorted alphabetically.
func (s *Student) Subjects() []string {
	subjects := make([]string, 0, len(s.Results))
	for subject := range s.Results {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects
}

// Clone returns a deep copy of s.
func (s *Student) Clone() *Student {
	c := New(s.Name, s.RollNumber)
	for subject, marks := range s.Results {
		c.Results[subject] = marks
	}
	return c
}

func (s *Student) Summary() Summary {
	results := make(map[string]int, len(s.Results))
	for subject, marks := range s.Results {
		results[subject] = marks
	}
	return Summary{
		Name:       s.Name,
		RollNumber: s.RollNumber,
		TotalMarks: s.TotalMarks(),
		MaxMarks:   s.MaxMarks(),
		Percentage: s.Percentage(),
		Grade:      s.Grade(),
		Results:    results,
	}
}

// Summary is a rendering-ready snapshot of a Student and its derived values.
type Summary struct {
	Name       string         `json:"name"`
	RollNumber string         `json:"roll_number"`
	TotalMarks int            `json:"total_marks"`
	MaxMarks   int            `json:"max_marks"`
	Percentage float64        `json:"percentage"`
	Grade      Grade          `json:"grade"`
	Results    map[string]int `json:"results"`
}

// Subjects returns the subject names sorted alphabetically.
func (sm Summary) Subjects() []string {
	subjects := make([]string, 0, len(sm.Results))
	for subject := range sm.Results {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects
}

// NewStudent contains information needed to register a new Student.
type NewStudent struct {
	Name       string `json:"name" validate:"required"`
	RollNumber string `json:"roll_number" validate:"required"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.RollNumber = core.CleanString(ns.RollNumber)
	return validate.Struct(ns)
}

// NewResult contains information needed to record a subject's marks.
// The student is looked up by RollNumber when set, else by exact Name.
type NewResult struct {
	Name       string `json:"name"`
	RollNumber string `json:"roll_number"`
	Subject    string `json:"subject" validate:"required"`
	Marks      *int   `json:"marks" validate:"required,min=0,max=100"`
}

func (nr *NewResult) Validate(validate *validator.Validate) error {
	nr.Name = core.CleanString(nr.Name)
	nr.RollNumber = core.CleanString(nr.RollNumber)
	nr.Subject = core.CleanString(nr.Subject)
	return validate.Struct(nr)
}
