// Package services holds the business logic that sits between the HTTP
// controllers and the repositories.
//
// Services defined in this package:
// - UserService: registers users and authenticates them by email and password
// - CourseService: create, list-by-owner, update and delete of courses
package services

import (
	"context"

	"github.com/yigit/coursedesk/internal/pkg/apperrors"
	"github.com/yigit/coursedesk/internal/pkg/auth"
)

// authorizeOwner rejects the call when an authenticated principal is present
// and does not own the record. Anonymous calls pass through.
func authorizeOwner(ctx context.Context, ownerID string) error {
	principal, ok := auth.PrincipalFrom(ctx)
	if !ok {
		return nil
	}
	if principal.UserID != ownerID {
		return apperrors.NewForbiddenError("course belongs to another user")
	}
	return nil
}
