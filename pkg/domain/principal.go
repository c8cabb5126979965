package domain

import "github.com/google/uuid"

// Principal is the authenticated subject of a request, decoded from an
// access token.
type Principal struct {
	// ID is the user ID for candidates and the business ID for businesses.
	ID       uuid.UUID
	Username string
	Role     Role
	// BID is only set for business principals.
	BID string
}

// UserID returns the candidate ID of the principal.
func (p Principal) UserID() UserID { return UserID(p.ID) }

// IsBusiness reports whether the principal is a business account.
func (p Principal) IsBusiness() bool { return p.Role == RoleBusiness }
