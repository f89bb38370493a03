package ports

import (
	"time"

	"canteen/internal/core/domain/model/cart"
	"canteen/internal/core/domain/model/kernel"
)

// SessionStore owns the carts of active sessions. A cart exists from session
// start until the session ends or is evicted for inactivity.
type SessionStore interface {
	// Start opens a session with an empty cart and returns its id.
	Start() (kernel.UUID, error)

	// End closes the session and discards its cart. Ending an unknown
	// session is not an error.
	End(id kernel.UUID)

	// WithCart runs fn with exclusive access to the session's cart.
	// Returns *errs.ObjectNotFoundError when the session does not exist.
	WithCart(id kernel.UUID, fn func(c *cart.Cart) error) error

	// Sweep ends sessions idle for longer than idle and returns how many
	// were ended.
	Sweep(idle time.Duration) int
}
