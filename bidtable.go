package bidtable

import (
	"fmt"

	"github.com/auctionworks/bidtable/hashfunc"
	"github.com/auctionworks/bidtable/internal/hash"
)

// DefaultTableSize - Number of buckets a hash table gets when no explicit size is given.
const DefaultTableSize int64 = 179

// Bid - Represents one bid record. Bids are stored by value; the table never
// retains a reference to anything the caller hands in.
//   - BidID is the unique identifier of the bid, expected to be non-empty and typically numeric text
//   - Title is the auction title of the bid
//   - Fund is the fund label the bid is associated with
//   - Amount is the bid amount, zero value is 0.0
type Bid struct {
	BidID  string
	Title  string
	Fund   string
	Amount float64
}

// Slot states
const (
	slotEmpty    uint8 = 0
	slotOccupied uint8 = 1
)

// chainEntry - Overflow node holding a bid that collided with an already occupied slot.
// Each entry owns its successor, chains are singly linked and appended at the tail.
type chainEntry struct {
	bid  Bid
	next *chainEntry
}

// slot - One directly addressable bucket cell. A slot is either empty or holds exactly
// one bid together with its bucket key and the head of an eventual overflow chain.
type slot struct {
	state uint8
	key   int64
	bid   Bid
	chain *chainEntry
}

// HashTable - A fixed-bucket-count hash table for bid records using separate chaining
// as collision resolution technique. The bucket count is set once at construction and
// is never changed, there is no rehashing or resizing.
//
// The table is not safe for concurrent use, it assumes a single caller on a single goroutine.
type HashTable struct {
	slots             []slot
	tableSize         int64
	bucketAlg         hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewHashTable - Returns a new hash table with the default number of buckets.
//   - algorithm is an optional custom bucket selection algorithm following the hashfunc.HashAlgorithm
//     interface, pass nil to use the internal numeric identifier algorithm
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is a standard Go error which should be nil if everything went ok
func NewHashTable(algorithm hashfunc.HashAlgorithm) (hashTable *HashTable, err error) {
	return NewHashTableWithSize(DefaultTableSize, algorithm)
}

// NewHashTableWithSize - Returns a new hash table with a caller chosen number of buckets.
// If the given algorithm rounds the table size up internally, the table allocates buckets
// according to what the algorithm reports back through GetTableSize.
//   - tableSize is the number of buckets to allocate, it must be a positive value
//   - algorithm is an optional custom bucket selection algorithm, pass nil to use the internal one
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is a standard Go error which should be nil if everything went ok
func NewHashTableWithSize(tableSize int64, algorithm hashfunc.HashAlgorithm) (hashTable *HashTable, err error) {
	// Check if tableSize is valid
	if tableSize <= 0 {
		err = fmt.Errorf("tableSize must be a positive value higher than 0 (zero)")
		return
	}

	// If no algorithm was given then use the default internal
	var internalAlg bool
	if algorithm == nil {
		algorithm = hash.NewNumericIDAlgorithm(tableSize)
		internalAlg = true
	} else {
		algorithm.SetTableSize(tableSize)
	}

	nBuckets := algorithm.GetTableSize()

	hashTable = &HashTable{
		slots:             make([]slot, nBuckets),
		tableSize:         nBuckets,
		bucketAlg:         algorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// Size - Returns the number of buckets in the table. This is the table capacity chosen at
// construction, not the number of stored bids. Use Stat for occupancy figures.
func (H *HashTable) Size() int64 {
	return H.tableSize
}

// GetBucketNo - Returns which bucket number the given bid identifier results in.
// Whatever the bucket algorithm produces is folded back into the valid bucket range,
// so the returned number is always within 0 to table size - 1.
//   - bidID is the identifier of a bid
func (H *HashTable) GetBucketNo(bidID string) (bucketNo int64) {
	bucketNo = H.bucketAlg.BucketNumber(bidID) % H.tableSize
	if bucketNo < 0 {
		bucketNo += H.tableSize
	}

	return
}
