package requests

// ProfileUpdate is a partial update of the visitor profile. A nil field is
// left unchanged by the backend.
type ProfileUpdate struct {
	FirstName   *string `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName    *string `json:"lastName,omitempty" validate:"omitempty,min=1"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,phone"`
	DateOfBirth *string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (p ProfileUpdate) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Phone == nil && p.DateOfBirth == nil
}
