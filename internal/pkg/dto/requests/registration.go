package requests

type RegisterPatient struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Gender    string `json:"gender,omitempty" validate:"omitempty,oneof=male female other unknown"`
	BirthDate string `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Phone     string `json:"phone,omitempty"`
}
