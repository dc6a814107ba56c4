package hashfunc

// HashAlgorithm - Interface that permits an implementation using the HashTable to supply a custom
// bucket selection algorithm suited for its particular distribution of bid identifiers.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called once when a hash table is created with a custom algorithm. Hence, if the
	// supplied instance already carries a table size it will be overwritten by the size given
	// at table construction.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// BucketNumber - Given a bid identifier it generates a bucket number between 0 and table size - 1.
	// The function must be deterministic, the same identifier must map to the same bucket for the
	// lifetime of the table. Numbers outside the table size are folded back into range by the table.
	BucketNumber(bidID string) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// It is very important that this function returns the actual table size and not just the table
	// size given at instantiating time or in a call to SetTableSize. Some algorithms are implemented
	// by rounding up to nearest 2 to the power of x, or to the nearest prime, and if such operations
	// are built into the implementation of this interface it must be covered in the GetTableSize.
	GetTableSize() int64
}
