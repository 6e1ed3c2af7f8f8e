package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		view          View
		authenticated bool
		want          Decision
	}{
		{ViewUsers, false, Decision{Redirect: ViewLogin}},
		{ViewUsers, true, Decision{Allow: true}},
		{ViewLogin, false, Decision{Allow: true}},
		{ViewLogin, true, Decision{Redirect: ViewUsers}},
		{ViewRegister, false, Decision{Allow: true}},
		{ViewRegister, true, Decision{Redirect: ViewUsers}},
		{ViewContact, false, Decision{Allow: true}},
		{ViewContact, true, Decision{Allow: true}},
		{ViewAbout, false, Decision{Allow: true}},
		{ViewServices, true, Decision{Allow: true}},
	}

	for _, tt := range tests {
		got := Check(tt.view, tt.authenticated)
		assert.Equal(t, tt.want, got, "view=%s authenticated=%v", tt.view, tt.authenticated)
	}
}

func TestProtected(t *testing.T) {
	assert.True(t, Protected(ViewUsers))
	for _, v := range []View{ViewLogin, ViewRegister, ViewContact, ViewAbout, ViewServices} {
		assert.False(t, Protected(v), v)
	}
}
