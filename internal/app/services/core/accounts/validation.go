package accounts

import (
	"shrm-web/internal/pkg/exceptions"
	"shrm-web/internal/pkg/utils"
)

type fieldRules struct {
	field string
	label string
	value string
	rules []utils.Rule
}

func validateFields(fields ...fieldRules) error {
	for _, f := range fields {
		result := utils.ValidateField(f.label, f.value, f.rules)
		if !result.IsValid {
			return exceptions.ErrFieldValidation(f.field, result.Error)
		}
	}
	return nil
}

func structError(err error) error {
	if err == nil {
		return nil
	}
	return exceptions.ErrStructValidation(err)
}
