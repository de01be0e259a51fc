package constvars

import "fmt"

// Option is a value/label pair rendered as a select option or radio button.
type Option struct {
	Value string
	Label string
}

const (
	ServiceIndividualCounseling = "individual-counseling"
	ServiceCouplesCounseling    = "couples-counseling"
	ServiceFamilyCounseling     = "family-counseling"
	ServiceGroupTherapy         = "group-therapy"
	ServiceChristianCounseling  = "christian-counseling"
	ServiceCrisisIntervention   = "crisis-intervention"
)

var ServiceTypeOptions = []Option{
	{Value: ServiceIndividualCounseling, Label: "Individual Counseling"},
	{Value: ServiceCouplesCounseling, Label: "Couples Counseling"},
	{Value: ServiceFamilyCounseling, Label: "Family Counseling"},
	{Value: ServiceGroupTherapy, Label: "Group Therapy"},
	{Value: ServiceChristianCounseling, Label: "Christian Counseling"},
	{Value: ServiceCrisisIntervention, Label: "Crisis Intervention"},
}

const (
	SessionTypeInPerson  = "in-person"
	SessionTypeVideoCall = "video-call"
	SessionTypePhoneCall = "phone-call"
)

var SessionTypeOptions = []Option{
	{Value: SessionTypeInPerson, Label: "In-Person at Our Office"},
	{Value: SessionTypeVideoCall, Label: "Video Call (Telehealth)"},
	{Value: SessionTypePhoneCall, Label: "Phone Call"},
}

var ReasonForCounselingOptions = []Option{
	{Value: "anxiety", Label: "Anxiety"},
	{Value: "depression", Label: "Depression"},
	{Value: "relationship-issues", Label: "Relationship Issues"},
	{Value: "trauma", Label: "Trauma/PTSD"},
	{Value: "grief", Label: "Grief/Loss"},
	{Value: "stress", Label: "Stress Management"},
	{Value: "addiction", Label: "Addiction/Recovery"},
	{Value: "family-conflict", Label: "Family Conflict"},
	{Value: "spiritual", Label: "Spiritual Struggles"},
	{Value: "other", Label: "Other"},
}

const ContactSubjectCrisis = "crisis"

var ContactSubjectOptions = []Option{
	{Value: "appointment", Label: "Appointment Inquiry"},
	{Value: "services", Label: "Services Information"},
	{Value: "insurance", Label: "Insurance Questions"},
	{Value: ContactSubjectCrisis, Label: "Crisis Support"},
	{Value: "feedback", Label: "Feedback"},
	{Value: "other", Label: "Other"},
}

// Half-hour appointment slots offered on the booking form.
const (
	AppointmentFirstSlot       = 9 * 60
	AppointmentLastSlot        = 18 * 60
	AppointmentSlotStepMinutes = 30
)

// PreferredTimeOptions lists every bookable slot between the first and last slot inclusive.
func PreferredTimeOptions() []Option {
	options := make([]Option, 0, (AppointmentLastSlot-AppointmentFirstSlot)/AppointmentSlotStepMinutes+1)
	for minutes := AppointmentFirstSlot; minutes <= AppointmentLastSlot; minutes += AppointmentSlotStepMinutes {
		hour, minute := minutes/60, minutes%60
		suffix := "AM"
		displayHour := hour
		if hour >= 12 {
			suffix = "PM"
		}
		if hour > 12 {
			displayHour = hour - 12
		}
		options = append(options, Option{
			Value: fmt.Sprintf("%02d:%02d", hour, minute),
			Label: fmt.Sprintf("%d:%02d %s", displayHour, minute, suffix),
		})
	}
	return options
}

// OptionValues returns the values of the given options, in order.
func OptionValues(options []Option) []string {
	values := make([]string, len(options))
	for i, option := range options {
		values[i] = option.Value
	}
	return values
}

// OptionLabel returns the label of value, or value itself when it is not a known option.
func OptionLabel(options []Option, value string) string {
	for _, option := range options {
		if option.Value == value {
			return option.Label
		}
	}
	return value
}
