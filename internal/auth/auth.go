// Package auth enforces the role hierarchy on service operations.
package auth

import (
	"github.com/stockroomhq/stockroom/internal/domain"
	apperrors "github.com/stockroomhq/stockroom/pkg/errors"
)

// Require returns a forbidden error if the acting user's role does not meet
// the required role.
func Require(user *domain.User, required domain.Role) error {
	if user == nil || !user.Role.AtLeast(required) {
		return apperrors.Forbidden("requires role " + string(required))
	}
	return nil
}
