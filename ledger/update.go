package ledger

import (
	"github.com/tokenlabs/multitoken/common"
	"github.com/tokenlabs/multitoken/common/amount"
)

// balanceKey addresses one balance entry: the composite of an asset class
// and a holder.
type balanceKey struct {
	id     common.TokenID
	holder common.Address
}

// update collects the pending effects of one in-progress operation:
// balance writes and buffered announcements. Reads during the operation
// see the overlay first and fall through to the committed state, so a
// batch observes its own earlier pairs. Dropping an update discards the
// operation without a trace; commit makes it observable as a whole.
type update struct {
	balances map[balanceKey]amount.Amount
	events   []Event
}

func newUpdate() *update {
	return &update{balances: make(map[balanceKey]amount.Amount)}
}

func (u *update) announce(event Event) {
	u.events = append(u.events, event)
}

// balance reads a pending or committed balance entry. Absent entries read
// as zero; entries are created lazily on first write.
func (l *Ledger) balance(u *update, id common.TokenID, holder common.Address) amount.Amount {
	if u != nil {
		if value, found := u.balances[balanceKey{id, holder}]; found {
			return value
		}
	}
	return l.balances[id][holder]
}

// credit increases a pending balance entry.
func (l *Ledger) credit(u *update, id common.TokenID, holder common.Address, value amount.Amount) {
	balance, ok := l.balance(u, id, holder).Add(value)
	if !ok {
		// 256-bit range is the representable limit of an entry.
		panic("balance overflow for " + holder.String())
	}
	u.balances[balanceKey{id, holder}] = balance
}

// debit decreases a pending balance entry, reporting whether the entry
// was sufficient. An insufficient entry is left untouched.
func (l *Ledger) debit(u *update, id common.TokenID, holder common.Address, value amount.Amount) bool {
	balance, ok := l.balance(u, id, holder).Sub(value)
	if !ok {
		return false
	}
	u.balances[balanceKey{id, holder}] = balance
	return true
}

// commit folds the update into the committed maps and flushes the
// buffered announcements. Inner per-asset maps are created lazily; a zero
// balance is kept as a tombstone rather than deleted.
func (l *Ledger) commit(u *update) {
	for key, value := range u.balances {
		holders := l.balances[key.id]
		if holders == nil {
			holders = make(map[common.Address]amount.Amount)
			l.balances[key.id] = holders
		}
		holders[key.holder] = value
	}
	if l.announcer != nil {
		for _, event := range u.events {
			l.announcer.Announce(event)
		}
	}
}
