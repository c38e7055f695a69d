package ledger

import (
	"slices"

	"github.com/tokenlabs/multitoken/common"
	"github.com/tokenlabs/multitoken/common/amount"
	"github.com/tokenlabs/multitoken/receipt"
)

// SafeTransferFrom moves value units of one asset class from one holder
// to another. The caller must be the holder or an approved operator. If
// the recipient is programmatic, the transfer is only finalized once the
// recipient acknowledged it; on any failure the operation has no
// observable effect, including its announcement. Self-transfers are
// permitted; their net balance effect is zero.
func (l *Ledger) SafeTransferFrom(caller, from, to common.Address, id common.TokenID, value amount.Amount, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if to.IsZero() {
		return ErrZeroRecipient
	}
	if !l.isAuthorized(from, caller) {
		return ErrUnauthorized
	}
	u := newUpdate()
	if !l.debit(u, id, from, value) {
		return ErrInsufficientBalance
	}
	l.credit(u, id, to, value)
	u.announce(TransferSingle{Operator: caller, From: from, To: to, ID: id, Value: value})
	if l.calls != nil && l.calls.IsProgrammatic(to) {
		outcome := l.calls.CallReceived(to, caller, from, id, value, data)
		if err := receipt.Decide(outcome, receipt.ReceivedSelector); err != nil {
			return err
		}
	}
	l.commit(u)
	return nil
}

// SafeBatchTransferFrom moves several asset classes from one holder to
// another in a single all-or-nothing operation. Pairs are processed in
// input order; if any pair fails its sufficiency check, no pair is
// applied. One batch announcement lists all ids and values in input
// order, and a programmatic recipient acknowledges the batch as a whole.
func (l *Ledger) SafeBatchTransferFrom(caller, from, to common.Address, ids []common.TokenID, values []amount.Amount, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if to.IsZero() {
		return ErrZeroRecipient
	}
	if !l.isAuthorized(from, caller) {
		return ErrUnauthorized
	}
	if len(ids) != len(values) {
		return ErrLengthMismatch
	}
	u := newUpdate()
	for i, id := range ids {
		if !l.debit(u, id, from, values[i]) {
			return ErrInsufficientBalance
		}
		l.credit(u, id, to, values[i])
	}
	u.announce(TransferBatch{
		Operator: caller,
		From:     from,
		To:       to,
		IDs:      slices.Clone(ids),
		Values:   slices.Clone(values),
	})
	if l.calls != nil && l.calls.IsProgrammatic(to) {
		outcome := l.calls.CallBatchReceived(to, caller, from, ids, values, data)
		if err := receipt.Decide(outcome, receipt.BatchReceivedSelector); err != nil {
			return err
		}
	}
	l.commit(u)
	return nil
}

// Mint creates value units of an existing asset class for a holder. Only
// the ledger's authority may mint. Minting is treated as always-accepted:
// no receipt hook is invoked even for programmatic recipients.
func (l *Ledger) Mint(caller, to common.Address, id common.TokenID, value amount.Amount, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if caller != l.owner {
		return ErrUnauthorized
	}
	u := newUpdate()
	if err := l.mint(u, caller, to, id, value); err != nil {
		return err
	}
	l.commit(u)
	return nil
}

// MintBatch mints several asset classes to a holder, all-or-nothing, with
// a single batch announcement carrying a zero source.
func (l *Ledger) MintBatch(caller, to common.Address, ids []common.TokenID, values []amount.Amount, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if caller != l.owner {
		return ErrUnauthorized
	}
	if to.IsZero() {
		return ErrZeroRecipient
	}
	if len(ids) != len(values) {
		return ErrLengthMismatch
	}
	u := newUpdate()
	for i, id := range ids {
		if _, found := l.tokens[id]; !found {
			return ErrNonexistentAsset
		}
		l.credit(u, id, to, values[i])
	}
	u.announce(TransferBatch{
		Operator: caller,
		To:       to,
		IDs:      slices.Clone(ids),
		Values:   slices.Clone(values),
	})
	l.commit(u)
	return nil
}

// Burn destroys value units of an asset class held by owner. Only the
// ledger's authority may burn, and the owner's balance must be
// sufficient.
func (l *Ledger) Burn(caller, owner common.Address, id common.TokenID, value amount.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if caller != l.owner {
		return ErrUnauthorized
	}
	if owner.IsZero() {
		return ErrZeroSource
	}
	u := newUpdate()
	if !l.debit(u, id, owner, value) {
		return ErrBurnExceedsBalance
	}
	u.announce(TransferSingle{Operator: caller, From: owner, ID: id, Value: value})
	l.commit(u)
	return nil
}

// BurnBatch burns several asset classes from a holder, all-or-nothing,
// with a single batch announcement carrying a zero recipient.
func (l *Ledger) BurnBatch(caller, owner common.Address, ids []common.TokenID, values []amount.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if caller != l.owner {
		return ErrUnauthorized
	}
	if owner.IsZero() {
		return ErrZeroSource
	}
	if len(ids) != len(values) {
		return ErrLengthMismatch
	}
	u := newUpdate()
	for i, id := range ids {
		if !l.debit(u, id, owner, values[i]) {
			return ErrBurnExceedsBalance
		}
	}
	u.announce(TransferBatch{
		Operator: caller,
		From:     owner,
		IDs:      slices.Clone(ids),
		Values:   slices.Clone(values),
	})
	l.commit(u)
	return nil
}

// mint is the shared mint primitive. It requires an existing asset class
// and a non-zero recipient, and announces a single transfer with a zero
// source. Callers must hold the lock and commit the update.
func (l *Ledger) mint(u *update, operator, to common.Address, id common.TokenID, value amount.Amount) error {
	if to.IsZero() {
		return ErrZeroRecipient
	}
	if _, found := l.tokens[id]; !found {
		return ErrNonexistentAsset
	}
	l.credit(u, id, to, value)
	u.announce(TransferSingle{Operator: operator, To: to, ID: id, Value: value})
	return nil
}
