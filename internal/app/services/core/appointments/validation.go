package appointments

import (
	"fmt"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/exceptions"
	"shrm-web/internal/pkg/utils"
)

type field struct {
	name  string
	value string
}

func requiredFields(request *requests.AppointmentRequest) []field {
	return []field{
		{"firstName", request.FirstName},
		{"lastName", request.LastName},
		{"email", request.Email},
		{"phone", request.Phone},
		{"serviceType", request.ServiceType},
		{"preferredDate", request.PreferredDate},
		{"preferredTime", request.PreferredTime},
		{"reasonForCounseling", request.ReasonForCounseling},
	}
}

// ValidateAppointmentRequest checks the booking form in a fixed order and
// returns the first problem as a *exceptions.ValidationError.
func ValidateAppointmentRequest(request *requests.AppointmentRequest) error {
	for _, f := range requiredFields(request) {
		if !utils.ValidateRequired(f.value) {
			return exceptions.ErrFieldValidation(f.name, fmt.Sprintf(constvars.ErrFieldFillInFormat, utils.HumanizeFieldName(f.name)))
		}
	}

	checks := []struct {
		field
		rule utils.Rule
	}{
		{field{"email", request.Email}, utils.RuleEmail},
		{field{"phone", request.Phone}, utils.RulePhone},
		{field{"preferredDate", request.PreferredDate}, utils.RuleDate},
		{field{"preferredTime", request.PreferredTime}, utils.RuleTime},
		{field{"preferredTime", request.PreferredTime}, utils.RuleSlot},
	}
	for _, check := range checks {
		result := utils.ValidateField(utils.HumanizeFieldName(check.name), check.value, []utils.Rule{check.rule})
		if !result.IsValid {
			return exceptions.ErrFieldValidation(check.name, result.Error)
		}
	}

	if request.EmergencyContactPhone != "" && !utils.ValidatePhone(request.EmergencyContactPhone) {
		return exceptions.ErrFieldValidation("emergencyContactPhone", constvars.ErrFieldInvalidPhone)
	}

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrStructValidation(err)
	}
	return nil
}
