package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	check := Email("required", "invalid")

	tests := []struct {
		in   string
		want string
	}{
		{in: "a@b.co", want: ""},
		{in: "first.last@mail.example.org", want: ""},
		{in: "a@b", want: "invalid"},
		{in: "ab.co", want: "invalid"},
		{in: "@b.co", want: "invalid"},
		{in: "", want: "required"},
		{in: "   ", want: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, check(tt.in, nil))
		})
	}
}

func TestRequired(t *testing.T) {
	check := Required("msg")
	assert.Equal(t, "msg", check("", nil))
	assert.Equal(t, "msg", check(" \t\n", nil))
	assert.Empty(t, check(" x ", nil))
}

func TestPresent(t *testing.T) {
	check := Present("msg")
	assert.Equal(t, "msg", check("", nil))
	assert.Empty(t, check(" ", nil))
}

func TestMinLength_CountsRunes(t *testing.T) {
	check := MinLength(3, "short")
	assert.Equal(t, "short", check("ab", nil))
	assert.Empty(t, check("äöü", nil))
}

func TestMatches(t *testing.T) {
	check := Matches("password", "mismatch")
	assert.Equal(t, "mismatch", check("a", Values{"password": "b"}))
	assert.Empty(t, check("a", Values{"password": "a"}))
}

func TestChoice(t *testing.T) {
	check := Choice([]string{"male", "female"}, "pick one")
	assert.Empty(t, check("female", nil))
	assert.Equal(t, "pick one", check("", nil))
	assert.Equal(t, "pick one", check("Male", nil))
}

func TestDate(t *testing.T) {
	check := Date("bad")
	assert.Empty(t, check("", nil))
	assert.Empty(t, check("1990-02-28", nil))
	assert.Equal(t, "bad", check("1990-02-30", nil))
	assert.Equal(t, "bad", check("28/02/1990", nil))
}

func TestOptional(t *testing.T) {
	check := Optional(Choice([]string{"a"}, "bad"))
	assert.Empty(t, check("", nil))
	assert.Empty(t, check("a", nil))
	assert.Equal(t, "bad", check("b", nil))
}
