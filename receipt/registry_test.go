package receipt

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenlabs/multitoken/common"
	"github.com/tokenlabs/multitoken/common/amount"
)

// scriptedReceiver acknowledges, rejects or faults depending on its
// configuration.
type scriptedReceiver struct {
	selector common.Selector
	err      error
	panics   bool
}

func (r *scriptedReceiver) OnReceived(operator, from common.Address, id common.TokenID, value amount.Amount, data []byte) (common.Selector, error) {
	return r.react()
}

func (r *scriptedReceiver) OnBatchReceived(operator, from common.Address, ids []common.TokenID, values []amount.Amount, data []byte) (common.Selector, error) {
	return r.react()
}

func (r *scriptedReceiver) react() (common.Selector, error) {
	if r.panics {
		panic("receiver fault")
	}
	return r.selector, r.err
}

func TestRegistry_UnregisteredHoldersArePlain(t *testing.T) {
	require := require.New(t)

	registry := NewRegistry()
	require.False(registry.IsProgrammatic(common.Address{1}))

	registry.Register(common.Address{1}, &scriptedReceiver{})
	require.True(registry.IsProgrammatic(common.Address{1}))
	require.False(registry.IsProgrammatic(common.Address{2}))
}

func TestRegistry_AcknowledgementBecomesReturned(t *testing.T) {
	require := require.New(t)

	target := common.Address{1}
	registry := NewRegistry()
	registry.Register(target, &scriptedReceiver{selector: ReceivedSelector})

	outcome := registry.CallReceived(target, common.Address{2}, common.Address{3},
		common.TokenIDOf(1), amount.New(10), nil)
	require.Equal(Returned{Value: ReceivedSelector}, outcome)
}

func TestRegistry_ErrorBecomesRevertedWithReason(t *testing.T) {
	require := require.New(t)

	target := common.Address{1}
	registry := NewRegistry()
	registry.Register(target, &scriptedReceiver{err: fmt.Errorf("not today")})

	outcome := registry.CallBatchReceived(target, common.Address{2}, common.Address{3},
		[]common.TokenID{common.TokenIDOf(1)}, []amount.Amount{amount.New(10)}, nil)
	require.Equal(RevertedWithReason{Reason: "not today"}, outcome)
}

func TestRegistry_PanicBecomesPanicked(t *testing.T) {
	require := require.New(t)

	target := common.Address{1}
	registry := NewRegistry()
	registry.Register(target, &scriptedReceiver{panics: true})

	outcome := registry.CallReceived(target, common.Address{2}, common.Address{3},
		common.TokenIDOf(1), amount.New(10), nil)
	require.Equal(Panicked{}, outcome)
}

func TestRegistry_MissingHookIsAnOpaqueRevert(t *testing.T) {
	require := require.New(t)

	registry := NewRegistry()
	outcome := registry.CallReceived(common.Address{9}, common.Address{2}, common.Address{3},
		common.TokenIDOf(1), amount.New(10), nil)
	require.Equal(Reverted{}, outcome)
}
