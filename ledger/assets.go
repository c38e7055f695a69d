package ledger

import (
	"github.com/tokenlabs/multitoken/common"
	"github.com/tokenlabs/multitoken/common/amount"
)

// Create registers a new asset class and returns its id. The sequence
// counter advances by exactly one per creation. The creator is recorded
// once and never changes; supply is recorded as the creation-time figure.
// A non-empty uri is announced as a metadata assignment.
//
// Creation and the initial mint of supply to holder are two chained
// ledger operations, not one atomic primitive: when the follow-on mint
// fails, the asset record remains created but unsupplied, and the
// returned id is valid alongside the error. Callers deciding the
// atomicity of the pair can burn-and-retry or keep the bare class.
func (l *Ledger) Create(creator, holder common.Address, supply amount.Amount, uri string) (common.TokenID, error) {
	if creator.IsZero() {
		// A zero creator would make the new class indistinguishable from
		// a nonexistent one.
		return common.TokenID{}, ErrZeroSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID = l.nextID.Next()
	id := l.nextID
	l.tokens[id] = tokenRecord{creator: creator, supply: supply, uri: uri}
	if uri != "" && l.announcer != nil {
		l.announcer.Announce(URI{ID: id, Value: uri})
	}

	// Follow-on step: seed the initial holder. Committed separately from
	// the registration above.
	u := newUpdate()
	if err := l.mint(u, creator, holder, id, supply); err != nil {
		return id, err
	}
	l.commit(u)
	return id, nil
}

// URI returns the metadata location of an asset class: the configured
// base URI concatenated with the class's recorded uri, falling back to
// the decimal id for classes created without one.
func (l *Ledger) URI(id common.TokenID) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	record, found := l.tokens[id]
	if !found {
		return "", ErrNonexistentAsset
	}
	if record.uri == "" {
		return l.baseURI + id.String(), nil
	}
	return l.baseURI + record.uri, nil
}

// SetURI re-assigns the metadata location of an asset class. Only the
// class's creator or the ledger's authority may do so. The assignment is
// announced.
func (l *Ledger) SetURI(caller common.Address, id common.TokenID, uri string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	record, found := l.tokens[id]
	if !found {
		return ErrNonexistentAsset
	}
	if caller != record.creator && caller != l.owner {
		return ErrUnauthorized
	}
	record.uri = uri
	l.tokens[id] = record
	if l.announcer != nil {
		l.announcer.Announce(URI{ID: id, Value: uri})
	}
	return nil
}
