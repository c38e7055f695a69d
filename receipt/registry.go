package receipt

import (
	"github.com/tokenlabs/multitoken/common"
	"github.com/tokenlabs/multitoken/common/amount"
)

// Receiver is a programmatic holder hosted in-process. Implementations
// acknowledge a transfer by returning the expected selector; returning an
// error aborts the transfer with that error's message as the reason; a
// panic is observed as the Panicked outcome.
type Receiver interface {
	OnReceived(operator, from common.Address, id common.TokenID, value amount.Amount, data []byte) (common.Selector, error)
	OnBatchReceived(operator, from common.Address, ids []common.TokenID, values []amount.Amount, data []byte) (common.Selector, error)
}

// Registry is an in-process implementation of Caller. Holders registered
// with a Receiver are programmatic; all other addresses are plain. A
// Registry with no registrations treats every address as plain, which
// makes it a usable default environment.
type Registry struct {
	receivers map[common.Address]Receiver
}

// NewRegistry creates an empty receiver registry.
func NewRegistry() *Registry {
	return &Registry{receivers: make(map[common.Address]Receiver)}
}

// Register installs a receiver for the given holder, turning it into a
// programmatic address.
func (r *Registry) Register(holder common.Address, receiver Receiver) {
	r.receivers[holder] = receiver
}

func (r *Registry) IsProgrammatic(holder common.Address) bool {
	_, found := r.receivers[holder]
	return found
}

func (r *Registry) CallReceived(target, operator, from common.Address, id common.TokenID, value amount.Amount, data []byte) Outcome {
	return r.invoke(target, func(receiver Receiver) (common.Selector, error) {
		return receiver.OnReceived(operator, from, id, value, data)
	})
}

func (r *Registry) CallBatchReceived(target, operator, from common.Address, ids []common.TokenID, values []amount.Amount, data []byte) Outcome {
	return r.invoke(target, func(receiver Receiver) (common.Selector, error) {
		return receiver.OnBatchReceived(operator, from, ids, values, data)
	})
}

// invoke runs the hook with panic containment. The environment guarantees
// a call either returns or is observed as a fault, never as a hang, so a
// recovered panic maps onto the Panicked case.
func (r *Registry) invoke(target common.Address, call func(Receiver) (common.Selector, error)) (outcome Outcome) {
	receiver, found := r.receivers[target]
	if !found {
		// A programmatic holder without a hook cannot acknowledge.
		return Reverted{}
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			outcome = Panicked{}
		}
	}()
	selector, err := call(receiver)
	if err != nil {
		return RevertedWithReason{Reason: err.Error()}
	}
	return Returned{Value: selector}
}
