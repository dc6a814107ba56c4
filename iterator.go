package bidtable

// BidIterator - Is used to enumerate every stored bid one by one, in bucket order from
// bucket 0 and up, within a bucket the slot bid first followed by the chain in chain order.
// Iteration never mutates the table. An iterator is a cursor over live table state, so the
// table must not be modified while one is in use, start a new one with All after changes.
type BidIterator struct {
	table    *HashTable
	bucketNo int64
	entry    *chainEntry
	nextBid  Bid
	hasNext  bool
}

// All - Returns an iterator positioned at the first stored bid. Each call returns a fresh
// iterator, so enumeration is restartable at any time.
func (H *HashTable) All() *BidIterator {
	iterator := &BidIterator{table: H, bucketNo: -1}
	iterator.advance()

	return iterator
}

// HasNext - Returns true if there are more bids to be fetched from a call to Next.
func (I *BidIterator) HasNext() bool {
	return I.hasNext
}

// Next - Returns the next bid in enumeration order.
// It returns:
//   - bid is the next stored bid
//   - err is an error of type NoBidFound if the iterator is already exhausted
func (I *BidIterator) Next() (bid Bid, err error) {
	if !I.hasNext {
		err = NoBidFound{}
		return
	}

	bid = I.nextBid
	I.advance()

	return
}

// advance - Moves the cursor to the following bid, first through the current chain and
// then on to the next occupied slot.
func (I *BidIterator) advance() {
	if I.entry != nil {
		I.nextBid = I.entry.bid
		I.entry = I.entry.next
		I.hasNext = true
		return
	}

	for I.bucketNo++; I.bucketNo < I.table.tableSize; I.bucketNo++ {
		s := &I.table.slots[I.bucketNo]
		if s.state == slotOccupied {
			I.nextBid = s.bid
			I.entry = s.chain
			I.hasNext = true
			return
		}
	}

	I.hasNext = false
}
