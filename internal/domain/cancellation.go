package domain

import "time"

// CancellationRequest is a single-use numeric code gating destructive
// cancellation of a booking. Only the most recently issued code for a
// booking is valid; issuing a new one supersedes all prior unverified
// requests. Expiry is enforced by timestamp comparison at verify time.
type CancellationRequest struct {
	ID        int64
	BookingID int64
	Code      string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Verified  bool
}

// IsExpired reports whether the code window has closed at the given instant
func (r *CancellationRequest) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// CanBeVerified reports whether the request is still open for verification
func (r *CancellationRequest) CanBeVerified(now time.Time) bool {
	return !r.Verified && !r.IsExpired(now)
}
