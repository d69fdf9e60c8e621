package auth

import "github.com/google/uuid"

// Identity is the authenticated caller, threaded explicitly through every
// authorization decision. There is no ambient session state.
type Identity struct {
	UserID uuid.UUID
	Role   string
}
