package utils

import (
	"regexp"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/requests"
	"strings"
	"unicode"
)

var camelCaseUpperRegex = regexp.MustCompile(constvars.RegexCamelCaseUpper)

// HumanizeFieldName turns a camelCase field name into lower case words,
// "firstName" becomes "first name".
func HumanizeFieldName(field string) string {
	if field == "" {
		return field
	}
	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])
	return strings.ToLower(camelCaseUpperRegex.ReplaceAllString(string(runes), " $1"))
}

func SanitizeAppointmentRequest(input *requests.AppointmentRequest) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.InsuranceProvider = strings.TrimSpace(input.InsuranceProvider)
	input.PolicyNumber = strings.TrimSpace(input.PolicyNumber)
	input.EmergencyContactName = strings.TrimSpace(input.EmergencyContactName)
	input.EmergencyContactPhone = strings.TrimSpace(input.EmergencyContactPhone)
	input.Medications = strings.TrimSpace(input.Medications)
	input.AdditionalInfo = strings.TrimSpace(input.AdditionalInfo)
}

func SanitizeContactMessage(input *requests.ContactMessage) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Message = strings.TrimSpace(input.Message)
}

func SanitizeLoginRequest(input *requests.LoginRequest) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeRegisterRequest(input *requests.RegisterRequest) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
}
