package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		required Role
		want     bool
	}{
		{"admin meets staff", RoleAdmin, RoleStaff, true},
		{"admin meets manager", RoleAdmin, RoleManager, true},
		{"admin meets admin", RoleAdmin, RoleAdmin, true},
		{"manager meets staff", RoleManager, RoleStaff, true},
		{"manager below admin", RoleManager, RoleAdmin, false},
		{"staff meets staff", RoleStaff, RoleStaff, true},
		{"staff below manager", RoleStaff, RoleManager, false},
		{"unknown role below staff", Role("intern"), RoleStaff, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.required))
		})
	}
}
