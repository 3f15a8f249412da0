package till

import "errors"

// Sentinel errors for the recoverable failure modes. None of them should
// terminate a running session; commands report them and move on.
var (
	// ErrEmptyCart is returned by Checkout when there is nothing to commit.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrEmptyLedger is returned by Export when the day has no checkouts.
	ErrEmptyLedger = errors.New("no checkouts recorded today")
	// ErrDeclined is returned when the operator answers no to a confirmation.
	ErrDeclined = errors.New("declined by operator")
)

// Confirmer is the interactive yes/no capability destructive operations
// require. It is supplied by the caller so the core stays promptless.
type Confirmer func(prompt string) bool
