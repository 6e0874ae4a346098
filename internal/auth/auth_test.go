package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockroomhq/stockroom/internal/domain"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

func TestRequire(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		required domain.Role
		wantErr  bool
	}{
		{"admin can do staff work", &domain.User{Role: domain.RoleAdmin}, domain.RoleStaff, false},
		{"manager can do staff work", &domain.User{Role: domain.RoleManager}, domain.RoleStaff, false},
		{"staff can do staff work", &domain.User{Role: domain.RoleStaff}, domain.RoleStaff, false},
		{"staff cannot do manager work", &domain.User{Role: domain.RoleStaff}, domain.RoleManager, true},
		{"manager cannot do admin work", &domain.User{Role: domain.RoleManager}, domain.RoleAdmin, true},
		{"nil user is forbidden", nil, domain.RoleStaff, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Require(tt.user, tt.required)
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrForbidden))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
