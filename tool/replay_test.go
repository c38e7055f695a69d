package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenlabs/multitoken/common"
	"github.com/tokenlabs/multitoken/common/amount"
	"github.com/tokenlabs/multitoken/ledger"
)

func TestDispatch_RoutesAFullScript(t *testing.T) {
	require := require.New(t)

	authority := common.Address{0xaa}
	alice := common.Address{1}
	bob := common.Address{2}
	l := ledger.New(authority)

	output, err := dispatch(l, operation{Op: "create", Caller: alice, Holder: alice, Supply: amount.New(100)})
	require.NoError(err)
	require.Equal("created asset 1", output)

	id := common.TokenIDOf(1)
	steps := []operation{
		{Op: "approve", Caller: alice, Operator: bob, Approved: true},
		{Op: "transfer", Caller: bob, From: alice, To: bob, ID: id, Value: amount.New(30)},
		{Op: "mint", Caller: authority, To: bob, ID: id, Value: amount.New(5)},
		{Op: "burn", Caller: authority, Owner: alice, ID: id, Value: amount.New(10)},
		{Op: "transferBatch", Caller: alice, From: alice, To: bob,
			IDs: []common.TokenID{id}, Values: []amount.Amount{amount.New(1)}},
		{Op: "mintBatch", Caller: authority, To: alice,
			IDs: []common.TokenID{id}, Values: []amount.Amount{amount.New(2)}},
		{Op: "burnBatch", Caller: authority, Owner: bob,
			IDs: []common.TokenID{id}, Values: []amount.Amount{amount.New(6)}},
	}
	for _, step := range steps {
		output, err := dispatch(l, step)
		require.NoError(err, "op %s", step.Op)
		require.Empty(output)
	}

	output, err = dispatch(l, operation{Op: "balance", ID: id, Holder: alice})
	require.NoError(err)
	require.Contains(output, "= 61")

	output, err = dispatch(l, operation{Op: "balance", ID: id, Holder: bob})
	require.NoError(err)
	require.Contains(output, "= 30")
}

func TestDispatch_SurfacesTheLiteralFailureReason(t *testing.T) {
	require := require.New(t)

	l := ledger.New(common.Address{0xaa})
	_, err := dispatch(l, operation{
		Op: "transfer", Caller: common.Address{1}, From: common.Address{1},
		ID: common.TokenIDOf(1), Value: amount.New(1),
	})
	require.EqualError(err, "ZeroRecipient")

	_, err = dispatch(l, operation{Op: "frobnicate"})
	require.ErrorContains(err, "unknown operation")
}
