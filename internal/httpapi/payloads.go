package httpapi

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CredentialsPayload is the body for both registration and login
type CredentialsPayload struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Validate will run validation rules
func (r CredentialsPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(5, 100)),
	)
}

// BankPayload is the body for bank upserts
type BankPayload struct {
	Bank string `json:"bank" form:"bank"`
}

func (r BankPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Bank, validation.Required),
	)
}

// TitlePayload is the body for title upserts
type TitlePayload struct {
	Title string `json:"title" form:"title"`
}

func (r TitlePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
	)
}

// AboutPayload is the body for about upserts
type AboutPayload struct {
	About string `json:"about" form:"about"`
}

func (r AboutPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.About, validation.Required, validation.Length(1, 400)),
	)
}
