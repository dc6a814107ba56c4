package hash

import (
	"strconv"

	"github.com/dchest/siphash"
)

// Fixed SipHash keys for the non-numeric fallback. They must never change, the
// bucket of an identifier has to be stable across table lifetimes and processes.
const (
	sipHashKey0 uint64 = 0x6269647461626c65
	sipHashKey1 uint64 = 0x68617368616c676f
)

// NumericIDAlgorithm - The internally used bucket selection algorithm. Bid identifiers are
// numeric text, so the identifier is parsed as a base 10 unsigned integer and reduced modulo
// the table size, which keeps identifiers in a contiguous numeric range spread evenly over
// the buckets.
//
// Identifiers that do not parse (empty, signed, overflowing or containing non-digits) fall
// back to SipHash-2-4 over the raw identifier bytes with fixed keys, reduced modulo the table
// size. The fallback is deterministic but deliberately unrelated to the numeric mapping.
type NumericIDAlgorithm struct {
	tableSize int64
}

// NewNumericIDAlgorithm - Returns a pointer to a new NumericIDAlgorithm instance
func NewNumericIDAlgorithm(tableSize int64) *NumericIDAlgorithm {
	return &NumericIDAlgorithm{tableSize: tableSize}
}

// SetTableSize - Sets the table size for the hash algorithm.
// This implementation uses the requested size as is, no rounding is applied.
//   - tableSize is the number of buckets the table will address
func (N *NumericIDAlgorithm) SetTableSize(tableSize int64) {
	N.tableSize = tableSize
}

// BucketNumber - Given a bid identifier it generates a bucket number between 0 and table size - 1
func (N *NumericIDAlgorithm) BucketNumber(bidID string) int64 {
	if id, err := strconv.ParseUint(bidID, 10, 63); err == nil {
		return int64(id) % N.tableSize
	}

	h := siphash.Hash(sipHashKey0, sipHashKey1, []byte(bidID))
	return int64(h % uint64(N.tableSize))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (N *NumericIDAlgorithm) GetTableSize() int64 {
	return N.tableSize
}
