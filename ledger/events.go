package ledger

import (
	"github.com/tokenlabs/multitoken/common"
	"github.com/tokenlabs/multitoken/common/amount"
)

//go:generate mockgen -source=events.go -destination=announcer_mock.go -package=ledger

// Event is a state-change announcement of the ledger. Events of an
// operation are buffered until the operation commits; an aborted
// operation announces nothing.
type Event interface {
	isEvent()
}

// TransferSingle announces a single transfer. Mints carry a zero From,
// burns a zero To.
type TransferSingle struct {
	Operator common.Address `json:"operator"`
	From     common.Address `json:"from"`
	To       common.Address `json:"to"`
	ID       common.TokenID `json:"id"`
	Value    amount.Amount  `json:"value"`
}

// TransferBatch announces a batch transfer with ids and values in input
// order.
type TransferBatch struct {
	Operator common.Address   `json:"operator"`
	From     common.Address   `json:"from"`
	To       common.Address   `json:"to"`
	IDs      []common.TokenID `json:"ids"`
	Values   []amount.Amount  `json:"values"`
}

// ApprovalForAll announces an operator approval change. It is announced
// on every write, including idempotent ones.
type ApprovalForAll struct {
	Owner    common.Address `json:"owner"`
	Operator common.Address `json:"operator"`
	Approved bool           `json:"approved"`
}

// URI announces a metadata assignment for an asset class.
type URI struct {
	ID    common.TokenID `json:"id"`
	Value string         `json:"value"`
}

func (TransferSingle) isEvent() {}
func (TransferBatch) isEvent()  {}
func (ApprovalForAll) isEvent() {}
func (URI) isEvent()            {}

// Announcer is the fire-and-forget notification sink of the ledger.
// Failures of the sink are not modeled as operation failures.
type Announcer interface {
	Announce(event Event)
}
