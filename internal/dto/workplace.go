package dto

// --- Workplace assignment DTOs ---

// AssignWorkplaceRequest defines data for joining or transferring a workplace.
// UserID must match the authenticated caller; it is carried in the body so the
// handler can reject cross-user assignment explicitly rather than silently
// acting on the caller.
type AssignWorkplaceRequest struct {
	UserID     string `json:"userID" binding:"required"`
	BusinessID string `json:"businessID" binding:"required"`
	State      string `json:"state" binding:"required"`
	City       string `json:"city" binding:"required"`
}

// UpdatePositionRequest defines data for setting the caller's position.
// An empty or omitted position clears the field.
type UpdatePositionRequest struct {
	Position string `json:"position"`
}

// SuccessResponse is the acknowledgement body for workplace mutations.
type SuccessResponse struct {
	Success bool `json:"success"`
}
