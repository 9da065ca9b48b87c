package services

import (
	"context"
)

// WorkplaceAssignmentSvc defines the employment-affiliation state transitions.
// Every operation requires requestorID to be the authenticated caller's ID;
// an empty requestorID fails with apperrors.ErrUnauthorized.
type WorkplaceAssignmentSvc interface {
	// AssignWorkplace joins the target user to a business, or transfers an
	// existing affiliation to the new business. Only the user themselves may
	// assign their workplace: requestorID != targetUserID fails with
	// apperrors.ErrForbidden. A businessID that does not resolve fails with
	// apperrors.ErrNotFound. On success the user's denormalized state and
	// city are set to the supplied values.
	AssignWorkplace(ctx context.Context, requestorID, targetUserID, businessID, state, city string) error

	// LeaveWorkplace drops the caller's affiliation and clears their
	// position, state and city. Leaving with no affiliation is a no-op
	// success.
	LeaveWorkplace(ctx context.Context, requestorID string) error

	// UpdatePosition sets the caller's free-text position. An empty position
	// clears the field to absent. Independent of any affiliation.
	UpdatePosition(ctx context.Context, requestorID, position string) error
}

// WorkplaceSvcFacade combines all workplace-assignment service interfaces.
type WorkplaceSvcFacade interface {
	WorkplaceAssignmentSvc
}
