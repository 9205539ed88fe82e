package bookings

import (
	"github.com/google/uuid"

	"homeservice-backend/models"
)

// Authorized reports whether the requester may read, update or delete the
// booking. Anonymous requesters get public access; bookings without an
// owner are open to everyone (ownership is not enforceable retroactively);
// otherwise the requester must be the owner. List operations pre-filter by
// owner instead of calling this per record.
func Authorized(b *models.Booking, requester *uuid.UUID) bool {
	if requester == nil {
		return true
	}
	if b.UserID == nil {
		return true
	}
	return *b.UserID == *requester
}
