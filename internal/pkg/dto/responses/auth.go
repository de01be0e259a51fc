package responses

type User struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Role        string `json:"role,omitempty"`
}

func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type Auth struct {
	Envelope
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

type Profile struct {
	Envelope
	User *User `json:"user,omitempty"`
}
