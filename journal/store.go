package journal

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Store is a sequence-ordered record store used to persist announcement
// records. Records are keyed by a monotonically increasing sequence
// number.
type Store interface {
	// Append writes the record under the given sequence number.
	Append(seq uint64, record []byte) error

	// NextSeq returns the sequence number following the highest one
	// present, zero for an empty store.
	NextSeq() (uint64, error)

	// ForEach visits all records in sequence order.
	ForEach(visit func(seq uint64, record []byte) error) error

	Close() error
}

// levelDbStore persists records in a LevelDB instance.
type levelDbStore struct {
	db *leveldb.DB
}

// OpenLevelDbStore opens (or creates) a record store in the given
// directory.
func OpenLevelDbStore(path string) (Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &levelDbStore{db: db}, nil
}

func seqKey(seq uint64) []byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], seq)
	return key[:]
}

func (s *levelDbStore) Append(seq uint64, record []byte) error {
	return s.db.Put(seqKey(seq), record, &opt.WriteOptions{})
}

func (s *levelDbStore) NextSeq() (uint64, error) {
	it := s.db.NewIterator(nil, &opt.ReadOptions{})
	defer it.Release()
	if !it.Last() {
		return 0, it.Error()
	}
	return binary.BigEndian.Uint64(it.Key()) + 1, it.Error()
}

func (s *levelDbStore) ForEach(visit func(seq uint64, record []byte) error) error {
	it := s.db.NewIterator(nil, &opt.ReadOptions{})
	defer it.Release()
	for it.Next() {
		record := make([]byte, len(it.Value()))
		copy(record, it.Value())
		if err := visit(binary.BigEndian.Uint64(it.Key()), record); err != nil {
			return err
		}
	}
	return it.Error()
}

func (s *levelDbStore) Close() error {
	return s.db.Close()
}

// memoryStore is an in-memory Store for testing purposes.
type memoryStore struct {
	records map[uint64][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: make(map[uint64][]byte)}
}

func (s *memoryStore) Append(seq uint64, record []byte) error {
	s.records[seq] = record
	return nil
}

func (s *memoryStore) NextSeq() (uint64, error) {
	var next uint64
	for seq := range s.records {
		if seq >= next {
			next = seq + 1
		}
	}
	return next, nil
}

func (s *memoryStore) ForEach(visit func(seq uint64, record []byte) error) error {
	keys := maps.Keys(s.records)
	slices.Sort(keys)
	for _, seq := range keys {
		if err := visit(seq, s.records[seq]); err != nil {
			return err
		}
	}
	return nil
}

func (s *memoryStore) Close() error {
	// No resources to clean up for the in-memory store.
	return nil
}
