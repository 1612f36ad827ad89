package student

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
)

// orderingFields maps the sortable Summary fields to their comparison.
var orderingFields = map[string]func(a, b Summary) int{
	"name":        func(a, b Summary) int { return strings.Compare(a.Name, b.Name) },
	"roll_number": func(a, b Summary) int { return strings.Compare(a.RollNumber, b.RollNumber) },
	"total_marks": func(a, b Summary) int { return a.TotalMarks - b.TotalMarks },
	"percentage": func(a, b Summary) int {
		switch {
		case a.Percentage < b.Percentage:
			return -1
		case a.Percentage > b.Percentage:
			return 1
		}
		return 0
	},
}

// ValidateOrderings checks that every ordering targets a sortable field.
func ValidateOrderings(orderings []core.Ordering) error {
	for _, ord := range orderings {
		if _, ok := orderingFields[ord.Field]; !ok {
			err := errors.Errorf("cannot order by %q", ord.Field)
			return core.NewValidationError(err, core.FieldError{Field: "ordering", Error: err.Error()})
		}
	}
	return nil
}

// Sort orders summaries in place. Ties keep their current (insertion) order.
func Sort(summaries []Summary, orderings []core.Ordering) {
	if len(orderings) == 0 {
		return
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		for _, ord := range orderings {
			cmp, ok := orderingFields[ord.Field]
			if !ok {
				continue
			}
			c := cmp(summaries[i], summaries[j])
			if c == 0 {
				continue
			}
			if ord.Ascending {
				return c < 0
			}
			return c > 0
		}
		return false
	})
}
