package ledger

import (
	"github.com/tokenlabs/multitoken/common"
	"github.com/tokenlabs/multitoken/receipt"
)

// Failure reasons of ledger operations. Every failure aborts the whole
// current operation with zero partial effect; the reason strings are
// surfaced literally, and callers pattern-match on them.
const (
	// ErrZeroRecipient rejects the sentinel zero address as the target of
	// a transfer or mint.
	ErrZeroRecipient = common.ConstError("ZeroRecipient")

	// ErrZeroSource rejects the sentinel zero address as the owner in a
	// burn or as the creator of a new asset class.
	ErrZeroSource = common.ConstError("ZeroSource")

	// ErrZeroHolder rejects a balance query for the sentinel zero
	// address; such a query is an error condition, not a zero balance.
	ErrZeroHolder = common.ConstError("ZeroHolder")

	// ErrUnauthorized rejects a caller that is neither the holder itself
	// nor an approved operator, or that lacks the authority flag for
	// mint and burn.
	ErrUnauthorized = common.ConstError("Unauthorized")

	// ErrSelfApproval rejects a holder approving itself as an operator.
	ErrSelfApproval = common.ConstError("SelfApproval")

	// ErrLengthMismatch rejects batch inputs whose slices disagree in
	// length.
	ErrLengthMismatch = common.ConstError("LengthMismatch")

	// ErrInsufficientBalance rejects a transfer exceeding the source's
	// balance.
	ErrInsufficientBalance = common.ConstError("InsufficientBalance")

	// ErrBurnExceedsBalance rejects a burn exceeding the owner's balance.
	ErrBurnExceedsBalance = common.ConstError("BurnExceedsBalance")

	// ErrNonexistentAsset rejects an operation on an asset class that was
	// never created.
	ErrNonexistentAsset = common.ConstError("NonexistentAsset")
)

// Acceptance failures are owned by the receipt package and re-exported
// here so that callers can match the complete taxonomy in one place.
const (
	ErrRejectedBySelector = receipt.ErrRejectedBySelector
	ErrNotAReceiver       = receipt.ErrNotAReceiver
	ErrCalleePanicked     = receipt.ErrCalleePanicked
)
