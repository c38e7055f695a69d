// Package receipt implements the acceptance protocol that guards
// transfers into programmatic holders. A transfer to a deployed contract
// is only final once the recipient acknowledged it through its receipt
// hook; this package issues that call through a collaborator interface and
// classifies its result into one of exactly four cases.
package receipt

import (
	"errors"
	"fmt"

	"github.com/tokenlabs/multitoken/common"
	"github.com/tokenlabs/multitoken/common/amount"
)

//go:generate mockgen -source=outcome.go -destination=caller_mock.go -package=receipt

// Acceptance failure reasons. The strings are surfaced verbatim to
// callers, which are expected to pattern-match on them.
const (
	ErrRejectedBySelector = common.ConstError("RejectedBySelector")
	ErrNotAReceiver       = common.ConstError("NotAnERC1155Receiver")
	ErrCalleePanicked     = common.ConstError("CalleePanicked")
)

// Expected acknowledgement selectors, derived from the canonical receipt
// hook signatures. A receiver confirms a transfer by returning the
// selector of the hook that was invoked.
var (
	// ReceivedSelector is 0xf23a6e61.
	ReceivedSelector = common.SelectorOf("onERC1155Received(address,address,uint256,uint256,bytes)")
	// BatchReceivedSelector is 0xbc197c81.
	BatchReceivedSelector = common.SelectorOf("onERC1155BatchReceived(address,address,uint256[],uint256[],bytes)")
)

// Interface identifiers of the exposed surfaces, defined as the xor over
// the member function selectors.
var (
	// LedgerInterfaceID is 0xd9b67a26.
	LedgerInterfaceID = common.SelectorOf("safeTransferFrom(address,address,uint256,uint256,bytes)").
				Xor(common.SelectorOf("safeBatchTransferFrom(address,address,uint256[],uint256[],bytes)")).
				Xor(common.SelectorOf("balanceOf(address,uint256)")).
				Xor(common.SelectorOf("balanceOfBatch(address[],uint256[])")).
				Xor(common.SelectorOf("setApprovalForAll(address,bool)")).
				Xor(common.SelectorOf("isApprovedForAll(address,address)"))

	// ReceiverInterfaceID is 0x4e2312e0.
	ReceiverInterfaceID = ReceivedSelector.Xor(BatchReceivedSelector)
)

// Outcome is the result of an external receipt-hook call. It is a closed
// sum over exactly four cases: Returned, RevertedWithReason, Reverted and
// Panicked. Code deciding on an outcome is required to handle all of them;
// an unknown case is a fatal internal error, not a recoverable condition.
type Outcome interface {
	isOutcome()
}

// Returned is a cleanly returning call; Value carries the returned
// acknowledgement selector.
type Returned struct {
	Value common.Selector
}

// RevertedWithReason is a call that was aborted by the callee with a
// human-readable reason.
type RevertedWithReason struct {
	Reason string
}

// Reverted is a call that was aborted without a decodable reason, which
// includes targets that do not implement the hook at all.
type Reverted struct {
	Data []byte
}

// Panicked is a call that faulted inside the callee, for instance through
// an arithmetic overflow or an invalid instruction.
type Panicked struct {
	Code uint64
}

func (Returned) isOutcome()           {}
func (RevertedWithReason) isOutcome() {}
func (Reverted) isOutcome()           {}
func (Panicked) isOutcome()           {}

// Caller abstracts the environment that identifies programmatic holders
// and issues receipt-hook calls to them. It is the sole surface through
// which control leaves the ledger during a transfer.
type Caller interface {
	// IsProgrammatic distinguishes deployed contracts from plain
	// externally-controlled addresses. Plain addresses always implicitly
	// accept and are never called.
	IsProgrammatic(holder common.Address) bool

	// CallReceived invokes the single-transfer receipt hook on target.
	CallReceived(target, operator, from common.Address, id common.TokenID, value amount.Amount, data []byte) Outcome

	// CallBatchReceived invokes the batch-transfer receipt hook on target.
	CallBatchReceived(target, operator, from common.Address, ids []common.TokenID, values []amount.Amount, data []byte) Outcome
}

// Decide maps an outcome to the commit/abort decision of the acceptance
// protocol. A nil result means commit; everything else is the literal
// failure reason aborting the whole operation. The expected selector is
// ReceivedSelector or BatchReceivedSelector depending on the variant of
// the hook that was invoked.
func Decide(outcome Outcome, expected common.Selector) error {
	switch outcome := outcome.(type) {
	case Returned:
		if outcome.Value != expected {
			return ErrRejectedBySelector
		}
		return nil
	case RevertedWithReason:
		// The callee's reason is propagated verbatim.
		return errors.New(outcome.Reason)
	case Reverted:
		return ErrNotAReceiver
	case Panicked:
		return ErrCalleePanicked
	default:
		panic(fmt.Sprintf("unclassified external outcome %T", outcome))
	}
}
