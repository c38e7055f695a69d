package journal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tokenlabs/multitoken/common"
	"github.com/tokenlabs/multitoken/common/amount"
	"github.com/tokenlabs/multitoken/ledger"
)

var (
	alice = common.Address{1}
	bob   = common.Address{2}
)

func TestJournal_RoundTripsAllEventKinds(t *testing.T) {
	require := require.New(t)

	store := newMemoryStore()
	journal, err := Open(store)
	require.NoError(err)

	events := []ledger.Event{
		ledger.TransferSingle{
			Operator: alice, From: alice, To: bob,
			ID: common.TokenIDOf(1), Value: amount.New(100),
		},
		ledger.TransferBatch{
			Operator: alice, From: alice, To: bob,
			IDs:    []common.TokenID{common.TokenIDOf(1), common.TokenIDOf(2)},
			Values: []amount.Amount{amount.New(1), amount.New(2)},
		},
		ledger.ApprovalForAll{Owner: alice, Operator: bob, Approved: true},
		ledger.URI{Value: "ipfs://metadata/1", ID: common.TokenIDOf(1)},
	}
	for _, event := range events {
		journal.Announce(event)
	}
	require.NoError(journal.Close())

	restored, err := Events(store)
	require.NoError(err)
	require.Equal(events, restored)
}

func TestJournal_FlushWaitsForPendingWrites(t *testing.T) {
	require := require.New(t)

	store := newMemoryStore()
	journal, err := Open(store)
	require.NoError(err)
	defer journal.Close()

	for i := 0; i < 100; i++ {
		journal.Announce(ledger.ApprovalForAll{Owner: alice, Operator: bob, Approved: i%2 == 0})
	}
	require.NoError(journal.Flush())

	next, err := store.NextSeq()
	require.NoError(err)
	require.Equal(uint64(100), next)
}

func TestJournal_ContinuesAfterTheHighestSequence(t *testing.T) {
	require := require.New(t)

	store := newMemoryStore()
	journal, err := Open(store)
	require.NoError(err)
	journal.Announce(ledger.ApprovalForAll{Owner: alice, Operator: bob, Approved: true})
	require.NoError(journal.Close())

	journal, err = Open(store)
	require.NoError(err)
	journal.Announce(ledger.ApprovalForAll{Owner: alice, Operator: bob, Approved: false})
	require.NoError(journal.Close())

	events, err := Events(store)
	require.NoError(err)
	require.Len(events, 2)
	require.Equal(ledger.ApprovalForAll{Owner: alice, Operator: bob, Approved: true}, events[0])
	require.Equal(ledger.ApprovalForAll{Owner: alice, Operator: bob, Approved: false}, events[1])
}

func TestJournal_SurfacesWriteErrorsOnFlush(t *testing.T) {
	require := require.New(t)

	store := &failingStore{fail: true}
	journal, err := Open(store)
	require.NoError(err)

	journal.Announce(ledger.ApprovalForAll{Owner: alice, Operator: bob, Approved: true})
	err = journal.Flush()
	require.ErrorContains(err, "disk full")

	// A flush consumes the collected errors.
	require.NoError(journal.Flush())

	store.fail = false
	require.NoError(journal.Close())
}

func TestJournal_OpenFailsIfThePositionCannotBeDetermined(t *testing.T) {
	require := require.New(t)

	_, err := Open(&failingStore{failNextSeq: true})
	require.ErrorContains(err, "journal position")
}

func TestLevelDbStore_PersistsAcrossReopening(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	store, err := OpenLevelDbStore(dir)
	require.NoError(err)
	journal, err := Open(store)
	require.NoError(err)
	journal.Announce(ledger.TransferSingle{
		Operator: alice, From: alice, To: bob,
		ID: common.TokenIDOf(7), Value: amount.New(3),
	})
	require.NoError(journal.Close())

	store, err = OpenLevelDbStore(dir)
	require.NoError(err)
	defer store.Close()

	next, err := store.NextSeq()
	require.NoError(err)
	require.Equal(uint64(1), next)

	events, err := Events(store)
	require.NoError(err)
	require.Len(events, 1)
	require.Equal(ledger.TransferSingle{
		Operator: alice, From: alice, To: bob,
		ID: common.TokenIDOf(7), Value: amount.New(3),
	}, events[0])
}

func TestEvents_ReportsUndecodableRecords(t *testing.T) {
	require := require.New(t)

	store := newMemoryStore()
	require.NoError(store.Append(0, []byte("not a snappy record")))

	_, err := Events(store)
	require.ErrorContains(err, "record 0")
}

// failingStore rejects appends while fail is set, and can also refuse
// to report its position so that opening on a broken store is testable.
type failingStore struct {
	memoryStore
	fail        bool
	failNextSeq bool
}

func (s *failingStore) Append(seq uint64, record []byte) error {
	if s.fail {
		return fmt.Errorf("disk full")
	}
	return nil
}

func (s *failingStore) NextSeq() (uint64, error) {
	if s.failNextSeq {
		return 0, fmt.Errorf("corrupted index")
	}
	return 0, nil
}
