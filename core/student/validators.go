package student

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/matokeo/core"
)

var (
	nameOrRollTag  = "name_or_roll"
	nameOrRollText = "one of name or roll number is required"
)

// InitValidators registers the student validation rules.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(resultStructValidation, NewResult{})
	core.RegisterCustomTranslation(validate, translator, nameOrRollTag, nameOrRollText)
}

// resultStructValidation checks that one of Name or RollNumber identifies the student.
func resultStructValidation(sl validator.StructLevel) {
	nr := sl.Current().Interface().(NewResult)
	if nr.Name == "" && nr.RollNumber == "" {
		sl.ReportError(nr.Name, "name", "Name", nameOrRollTag, "")
		sl.ReportError(nr.RollNumber, "roll_number", "RollNumber", nameOrRollTag, "")
	}
}
