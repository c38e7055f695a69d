// Package ledger implements a multi-token balance ledger for fungible and
// semi-fungible asset classes identified by 256-bit ids. Each class
// independently tracks its creator, its creation-time supply and
// per-holder balances. Holders transfer and approve delegates, an
// authority mints and burns supply, balances never go negative, batch
// operations are all-or-nothing, and transfers into programmatic
// recipients are only finalized once the recipient acknowledged receipt
// through the acceptance protocol of the receipt package.
package ledger

import (
	"sync"

	"github.com/tokenlabs/multitoken/common"
	"github.com/tokenlabs/multitoken/common/amount"
	"github.com/tokenlabs/multitoken/receipt"
)

// tokenRecord holds the per-asset-class registration data. The creator is
// set exactly once, at creation. The supply figure is the creation-time
// label; it is deliberately not kept in sync with later mint and burn
// activity (see TotalSupply).
type tokenRecord struct {
	creator common.Address
	supply  amount.Amount
	uri     string
}

// Ledger is the accounting aggregate. There is exactly one per deployed
// instance; it is created once and mutated in place for the life of the
// process. All maps are owned exclusively by the ledger, inner maps are
// created lazily, and a single lock serializes operations, preserving the
// all-or-nothing guarantee on a concurrent host.
type Ledger struct {
	mu sync.Mutex

	balances  map[common.TokenID]map[common.Address]amount.Amount
	approvals map[common.Address]map[common.Address]bool
	tokens    map[common.TokenID]tokenRecord
	nextID    common.TokenID

	owner   common.Address
	baseURI string

	calls     receipt.Caller
	announcer Announcer
}

// Option configures a ledger at construction time.
type Option func(*Ledger)

// WithAcceptanceCaller installs the environment that identifies
// programmatic holders and issues their receipt-hook calls. Without one,
// every recipient counts as plain and implicitly accepts.
func WithAcceptanceCaller(calls receipt.Caller) Option {
	return func(l *Ledger) {
		l.calls = calls
	}
}

// WithAnnouncer installs the notification sink. Without one,
// announcements are dropped.
func WithAnnouncer(announcer Announcer) Option {
	return func(l *Ledger) {
		l.announcer = announcer
	}
}

// WithBaseURI sets the prefix for metadata URIs, see URI.
func WithBaseURI(base string) Option {
	return func(l *Ledger) {
		l.baseURI = base
	}
}

// New creates an empty ledger whose mint and burn authority is owner. The
// asset-class sequence starts at one; the zero id stays reserved.
func New(owner common.Address, opts ...Option) *Ledger {
	l := &Ledger{
		balances:  make(map[common.TokenID]map[common.Address]amount.Amount),
		approvals: make(map[common.Address]map[common.Address]bool),
		tokens:    make(map[common.TokenID]tokenRecord),
		owner:     owner,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Owner returns the mint/burn authority of this ledger.
func (l *Ledger) Owner() common.Address {
	return l.owner
}

// BalanceOf returns the holder's balance of the given asset class.
// Querying the sentinel zero address is an error, not a zero balance;
// querying an unseeded asset class is a plain zero.
func (l *Ledger) BalanceOf(id common.TokenID, holder common.Address) (amount.Amount, error) {
	if holder.IsZero() {
		return amount.Amount{}, ErrZeroHolder
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance(nil, id, holder), nil
}

// BalanceOfBatch returns the balances of position-for-position pairs of
// holders and asset classes. The whole query fails if the input lengths
// disagree or any holder is the zero address.
func (l *Ledger) BalanceOfBatch(holders []common.Address, ids []common.TokenID) ([]amount.Amount, error) {
	if len(holders) != len(ids) {
		return nil, ErrLengthMismatch
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	res := make([]amount.Amount, len(holders))
	for i, holder := range holders {
		if holder.IsZero() {
			return nil, ErrZeroHolder
		}
		res[i] = l.balance(nil, ids[i], holder)
	}
	return res, nil
}

// SetApprovalForAll grants or revokes blanket transfer authority of
// operator over all of owner's balances. Self-approval is rejected. The
// write and its announcement are unconditional, even when the new value
// equals the old one.
func (l *Ledger) SetApprovalForAll(owner, operator common.Address, approved bool) error {
	if owner == operator {
		return ErrSelfApproval
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	operators := l.approvals[owner]
	if operators == nil {
		operators = make(map[common.Address]bool)
		l.approvals[owner] = operators
	}
	operators[operator] = approved
	if l.announcer != nil {
		l.announcer.Announce(ApprovalForAll{Owner: owner, Operator: operator, Approved: approved})
	}
	return nil
}

// IsApprovedForAll reports whether operator holds blanket transfer
// authority over owner's balances. It tolerates any pair, including
// owner == operator, and defaults to false.
func (l *Ledger) IsApprovedForAll(owner, operator common.Address) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.approvals[owner][operator]
}

// isAuthorized implements the shared authorization rule of single and
// batch transfers: the caller is the holder itself or an approved
// operator. Callers must hold the lock.
func (l *Ledger) isAuthorized(from, caller common.Address) bool {
	return caller == from || l.approvals[from][caller]
}

// Exists reports whether an asset class has been created for the id.
func (l *Ledger) Exists(id common.TokenID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, found := l.tokens[id]
	return found
}

// Creator returns the recorded creator of an asset class, or the zero
// address for ids that were never created.
func (l *Ledger) Creator(id common.TokenID) common.Address {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tokens[id].creator
}

// TotalSupply returns the creation-time supply figure of an asset class.
// This is informational bookkeeping from the upstream design: the figure
// is a static label and not updated by later mint and burn activity.
func (l *Ledger) TotalSupply(id common.TokenID) amount.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tokens[id].supply
}

// Balances returns a deep copy of all non-zero balance entries, keyed by
// asset class and holder. Zero tombstone entries are skipped.
func (l *Ledger) Balances() map[common.TokenID]map[common.Address]amount.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	res := make(map[common.TokenID]map[common.Address]amount.Amount, len(l.balances))
	for id, holders := range l.balances {
		for holder, value := range holders {
			if value.IsZero() {
				continue
			}
			if res[id] == nil {
				res[id] = make(map[common.Address]amount.Amount, len(holders))
			}
			res[id][holder] = value
		}
	}
	return res
}
