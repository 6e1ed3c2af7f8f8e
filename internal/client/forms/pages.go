package forms

import (
	"github.com/dmitrijs2005/siteadmin/internal/client/models"
)

// Field names. They match the JSON names of the users API.
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldTitle           = "firstname"
	FieldGivenName       = "fullname"
	FieldFamilyName      = "lastname"
	FieldAddress         = "address"
	FieldSex             = "sex"
	FieldBirthday        = "birthday"

	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldCompany = "company"
	FieldService = "service"
	FieldMessage = "message"
)

// MinPasswordLength applies to registration only.
const MinPasswordLength = 6

const (
	MsgUsernameRequired   = "Please enter your username"
	MsgPasswordRequired   = "Please enter your password"
	MsgPasswordTooShort   = "Password must be at least 6 characters"
	MsgConfirmRequired    = "Please confirm your password"
	MsgPasswordMismatch   = "Passwords do not match"
	MsgTitleRequired      = "Please enter a title"
	MsgGivenNameRequired  = "Please enter your first name"
	MsgFamilyNameRequired = "Please enter your last name"
	MsgAddressRequired    = "Please enter your address"
	MsgSexRequired        = "Please select your sex"
	MsgBirthdayRequired   = "Please select your birth date"
	MsgBirthdayInvalid    = "Please enter the birth date as YYYY-MM-DD"

	MsgNameRequired    = "Please enter your name"
	MsgEmailRequired   = "Please enter your email"
	MsgEmailInvalid    = "Please enter a valid email address"
	MsgMessageRequired = "Please enter a message"
	MsgServiceInvalid  = "Please pick one of the listed services"
)

// ServiceOptions are the services a contact message can be about.
var ServiceOptions = []string{
	"UI/UX Design",
	"Web Development",
	"App Development",
	"Digital Consulting",
	"Support & Maintenance",
	"Data Analytics",
	"Other",
}

// Options returns the allowed values of a choice field, or nil for free
// text fields.
func Options(field string) []string {
	switch field {
	case FieldSex:
		return models.Sexes
	case FieldTitle:
		return models.Titles
	case FieldService:
		return ServiceOptions
	default:
		return nil
	}
}

// Labels are the human names of the fields, for prompts and error lists.
var Labels = map[string]string{
	FieldUsername:        "Username",
	FieldPassword:        "Password",
	FieldConfirmPassword: "Confirm password",
	FieldTitle:           "Title",
	FieldGivenName:       "First name",
	FieldFamilyName:      "Last name",
	FieldAddress:         "Address",
	FieldSex:             "Sex",
	FieldBirthday:        "Birth date",
	FieldName:            "Name",
	FieldEmail:           "Email",
	FieldPhone:           "Phone",
	FieldCompany:         "Company",
	FieldService:         "Service",
	FieldMessage:         "Message",
}

// Secret reports whether a field must be read without echo.
func Secret(field string) bool {
	return field == FieldPassword || field == FieldConfirmPassword
}

func NewLoginForm() *Form {
	return New(
		[]string{FieldUsername, FieldPassword},
		Field(FieldUsername, Required(MsgUsernameRequired)),
		Field(FieldPassword, Present(MsgPasswordRequired)),
	)
}

// NewRegisterForm builds the registration form. The password length check
// runs after the presence check and overwrites it, so an empty password
// reports MsgPasswordTooShort.
func NewRegisterForm() *Form {
	return New(
		[]string{
			FieldTitle, FieldGivenName, FieldFamilyName, FieldUsername,
			FieldPassword, FieldConfirmPassword, FieldSex, FieldBirthday, FieldAddress,
		},
		Field(FieldTitle, Required(MsgTitleRequired)),
		Field(FieldGivenName, Required(MsgGivenNameRequired)),
		Field(FieldFamilyName, Required(MsgFamilyNameRequired)),
		Field(FieldUsername, Required(MsgUsernameRequired)),
		Field(FieldPassword,
			Present(MsgPasswordRequired),
			MinLength(MinPasswordLength, MsgPasswordTooShort),
		),
		Field(FieldConfirmPassword,
			Present(MsgConfirmRequired),
			Matches(FieldPassword, MsgPasswordMismatch),
		),
		Field(FieldAddress, Required(MsgAddressRequired)),
		Field(FieldSex, Choice(models.Sexes, MsgSexRequired)),
		Field(FieldBirthday,
			Present(MsgBirthdayRequired),
			Date(MsgBirthdayInvalid),
		),
	)
}

func NewContactForm() *Form {
	return New(
		[]string{FieldName, FieldEmail, FieldPhone, FieldCompany, FieldService, FieldMessage},
		Field(FieldName, Required(MsgNameRequired)),
		Field(FieldEmail, Email(MsgEmailRequired, MsgEmailInvalid)),
		Field(FieldService, Optional(Choice(ServiceOptions, MsgServiceInvalid))),
		Field(FieldMessage, Required(MsgMessageRequired)),
	)
}

var editFields = []string{
	FieldTitle, FieldGivenName, FieldFamilyName, FieldUsername,
	FieldPassword, FieldSex, FieldBirthday, FieldAddress,
}

// NewEditForm returns a form seeded with the fields of u. It has no rules:
// whatever is entered is sent as is.
func NewEditForm(u models.User) *Form {
	f := New(editFields)
	for name, v := range map[string]string{
		FieldTitle:      u.Title,
		FieldGivenName:  u.GivenName,
		FieldFamilyName: u.FamilyName,
		FieldUsername:   u.Username,
		FieldPassword:   u.Password,
		FieldSex:        u.Sex,
		FieldBirthday:   u.Birthday,
		FieldAddress:    u.Address,
	} {
		f.Set(name, v)
	}
	return f
}

func CredentialsFrom(v Values) models.Credentials {
	return models.Credentials{Username: v[FieldUsername], Password: v[FieldPassword]}
}

// UserFrom builds the registration payload. The confirmation field is not
// part of it.
func UserFrom(v Values) models.User {
	return models.User{
		Title:      v[FieldTitle],
		GivenName:  v[FieldGivenName],
		FamilyName: v[FieldFamilyName],
		Username:   v[FieldUsername],
		Password:   v[FieldPassword],
		Address:    v[FieldAddress],
		Sex:        v[FieldSex],
		Birthday:   v[FieldBirthday],
	}
}

// EditedUser is UserFrom with the id of the user being edited.
func EditedUser(id models.ID, v Values) models.User {
	u := UserFrom(v)
	u.ID = id
	return u
}

func ContactFrom(v Values) models.ContactMessage {
	return models.ContactMessage{
		Name:    v[FieldName],
		Email:   v[FieldEmail],
		Phone:   v[FieldPhone],
		Company: v[FieldCompany],
		Service: v[FieldService],
		Message: v[FieldMessage],
	}
}
