package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"shrm-web/internal/pkg/constvars"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Rule names a single field check understood by ValidateField.
type Rule string

const (
	RuleRequired Rule = "required"
	RuleEmail    Rule = "email"
	RulePhone    Rule = "phone"
	RuleDate     Rule = "date"
	RuleTime     Rule = "time"
	RuleSlot     Rule = "slot"
)

type ValidationResult struct {
	IsValid bool
	Error   string
}

var (
	validate *validator.Validate

	emailRegex           = regexp.MustCompile(constvars.RegexEmail)
	phoneRegex           = regexp.MustCompile(constvars.RegexPhone)
	phoneFormattingRegex = regexp.MustCompile(constvars.RegexPhoneFormatting)
	timeRegex            = regexp.MustCompile(constvars.RegexTimeHHMM)
	timeSlots            = constvars.OptionValues(constvars.PreferredTimeOptions())
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(humanizeStructField)
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidatePhone(fl.Field().String())
	})
	validate.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
		return ValidateDate(fl.Field().String())
	})
	validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return ValidateTime(fl.Field().String())
	})
	validate.RegisterValidation("slot", func(fl validator.FieldLevel) bool {
		return ValidateTimeSlot(fl.Field().String())
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ValidateRequired(value string) bool {
	return len(strings.TrimSpace(value)) > 0
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone ignores spaces, dashes and parentheses before matching.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phoneFormattingRegex.ReplaceAllString(phone, ""))
}

// ValidateDate reports whether a YYYY-MM-DD date is today or later in local time.
func ValidateDate(date string) bool {
	selected, err := time.ParseInLocation(constvars.LayoutDateYYYYMMDD, date, time.Local)
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	return !selected.Before(today)
}

func ValidateTime(value string) bool {
	return timeRegex.MatchString(value)
}

// ValidateTimeSlot reports whether value is one of the half-hour slots offered
// on the booking form.
func ValidateTimeSlot(value string) bool {
	return slices.Contains(timeSlots, value)
}

// ValidateField applies rules in order and reports the first failure.
// Unknown rules are skipped.
func ValidateField(fieldName, value string, rules []Rule) ValidationResult {
	for _, rule := range rules {
		switch rule {
		case RuleRequired:
			if !ValidateRequired(value) {
				return invalid(fmt.Sprintf(constvars.ErrFieldRequiredFormat, fieldName))
			}
		case RuleEmail:
			if !ValidateEmail(value) {
				return invalid(constvars.ErrFieldInvalidEmail)
			}
		case RulePhone:
			if !ValidatePhone(value) {
				return invalid(constvars.ErrFieldInvalidPhone)
			}
		case RuleDate:
			if !ValidateDate(value) {
				return invalid(constvars.ErrFieldPastDate)
			}
		case RuleTime:
			if !ValidateTime(value) {
				return invalid(constvars.ErrFieldInvalidTime)
			}
		case RuleSlot:
			if !ValidateTimeSlot(value) {
				return invalid(constvars.ErrFieldInvalidSlot)
			}
		}
	}
	return ValidationResult{IsValid: true}
}

func invalid(message string) ValidationResult {
	return ValidationResult{IsValid: false, Error: message}
}

func humanizeStructField(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		name = field.Name
	}
	return HumanizeFieldName(name)
}
