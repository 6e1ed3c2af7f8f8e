// Package models defines the records exchanged with the users API.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sex values as the backend stores them.
const (
	SexMale   = "ชาย"
	SexFemale = "หญิง"
)

// Title values as the backend stores them.
const (
	TitleMr   = "นาย"
	TitleMrs  = "นาง"
	TitleMiss = "นางสาว"
)

// Titles lists the recognised titles in display order.
var Titles = []string{TitleMr, TitleMrs, TitleMiss}

// Sexes lists the recognised sex values in display order.
var Sexes = []string{SexMale, SexFemale}

var labels = map[string]string{
	SexMale:   "Male",
	SexFemale: "Female",
	TitleMr:   "Mr",
	TitleMrs:  "Mrs",
	TitleMiss: "Miss",
}

// Label returns the English name of a sex or title value. Other values are
// returned unchanged.
func Label(v string) string {
	if l, ok := labels[v]; ok {
		return l
	}
	return v
}

// FromLabel is the inverse of Label. It matches labels case-insensitively
// and returns anything else unchanged, so stored values pass through.
func FromLabel(s string) string {
	t := strings.TrimSpace(s)
	for v, l := range labels {
		if strings.EqualFold(l, t) {
			return v
		}
	}
	return s
}

var ErrInvalidID = errors.New("user id must be a string or a number")

var jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// ID is the opaque, server-assigned user identifier. The backend may send it
// as a JSON number or a JSON string; values in JSON number syntax are written
// back as numbers, anything else as a string.
type ID string

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

func (id ID) MarshalJSON() ([]byte, error) {
	if jsonNumber.MatchString(string(id)) {
		return []byte(string(id)), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, string(b))
	}
	*id = ID(n.String())
	return nil
}

// User is a site account as listed, created and updated through the API.
// Password travels in plain text; the wire contract offers nothing else.
type User struct {
	ID         ID     `json:"id,omitempty"`
	Title      string `json:"firstname"`
	GivenName  string `json:"fullname"`
	FamilyName string `json:"lastname"`
	Username   string `json:"username"`
	Password   string `json:"password,omitempty"`
	Address    string `json:"address"`
	Sex        string `json:"sex"`
	Birthday   string `json:"birthday"`
}

// DisplayName joins title label, given and family names, skipping blanks.
func (u User) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{Label(u.Title), u.GivenName, u.FamilyName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Initial is the avatar letter: given name first, then username, else "?".
func (u User) Initial() string {
	for _, s := range []string{u.GivenName, u.Username} {
		if r := []rune(strings.TrimSpace(s)); len(r) > 0 {
			return string(r[0])
		}
	}
	return "?"
}

func (u User) String() string {
	return fmt.Sprintf("[%s] %s @%s", u.ID, u.DisplayName(), u.Username)
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the part of the login response the client relies on.
type LoginResult struct {
	Token string `json:"token"`
}

// ContactMessage is the content of the contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Service string
	Message string
}
