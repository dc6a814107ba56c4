package bidtable

import (
	"fmt"
)

// Insert - Stores the given bid in the table. If the slot addressed by the bid identifier
// is empty the bid occupies it directly, on collision the bid is appended at the tail of
// the slot's overflow chain.
//
// Inserting an identifier that is already present leaves the stored bid untouched and
// discards the new one, first insert wins. Use Upsert for update-or-insert semantics.
//   - bid is a fully formed bid with a non-empty BidID
func (H *HashTable) Insert(bid Bid) {
	bucketNo := H.GetBucketNo(bid.BidID)
	s := &H.slots[bucketNo]

	// An empty slot takes the bid directly, no chain entry is allocated
	if s.state == slotEmpty {
		s.state = slotOccupied
		s.key = bucketNo
		s.bid = bid
		s.chain = nil
		return
	}

	if s.bid.BidID == bid.BidID {
		return
	}

	// Walk the chain looking for a duplicate, remembering the tail for an eventual append
	var tail *chainEntry
	for entry := s.chain; entry != nil; entry = entry.next {
		if entry.bid.BidID == bid.BidID {
			return
		}
		tail = entry
	}

	entry := &chainEntry{bid: bid}
	if tail == nil {
		s.chain = entry
	} else {
		tail.next = entry
	}
}

// Upsert - Stores the given bid in the table, replacing an already stored bid with the
// same identifier in place. The replaced bid keeps its position in the slot or chain, so
// enumeration order is unaffected by updates.
//   - bid is a fully formed bid with a non-empty BidID
func (H *HashTable) Upsert(bid Bid) {
	bucketNo := H.GetBucketNo(bid.BidID)
	s := &H.slots[bucketNo]

	if s.state == slotOccupied {
		if s.bid.BidID == bid.BidID {
			s.bid = bid
			return
		}
		for entry := s.chain; entry != nil; entry = entry.next {
			if entry.bid.BidID == bid.BidID {
				entry.bid = bid
				return
			}
		}
	}

	H.Insert(bid)
}

// Search - Gets the bid that corresponds to the given identifier.
//   - bidID is the identifier of a bid
//
// It returns:
//   - bid is the matching bid if found, if not found an error of type NoBidFound is also returned
//   - err is either of type NoBidFound or nil
func (H *HashTable) Search(bidID string) (bid Bid, err error) {
	s := &H.slots[H.GetBucketNo(bidID)]

	if s.state == slotEmpty {
		err = NoBidFound{}
		return
	}

	if s.bid.BidID == bidID {
		bid = s.bid
		return
	}

	for entry := s.chain; entry != nil; entry = entry.next {
		if entry.bid.BidID == bidID {
			bid = entry.bid
			return
		}
	}

	bid = Bid{}
	err = NoBidFound{}

	return
}

// Remove - Removes the bid that corresponds to the given identifier from the table.
// Removing an identifier that is not present is a silent no-op.
//
// When the removed bid sits in the slot itself and chained entries exist, the first chain
// entry is promoted into the slot so the rest of the chain stays reachable. When it is the
// only bid in the slot, the slot is reset to empty. A chained bid is removed by relinking
// its predecessor to its successor, all other chain members keep their order.
//   - bidID is the identifier of a bid
func (H *HashTable) Remove(bidID string) {
	bucketNo := H.GetBucketNo(bidID)
	s := &H.slots[bucketNo]

	if s.state == slotEmpty {
		return
	}

	if s.bid.BidID == bidID {
		if s.chain == nil {
			*s = slot{}
			return
		}

		// Promote the first chain entry into the slot
		s.bid = s.chain.bid
		s.chain = s.chain.next
		return
	}

	var prev *chainEntry
	for entry := s.chain; entry != nil; entry = entry.next {
		if entry.bid.BidID == bidID {
			if prev == nil {
				s.chain = entry.next
			} else {
				prev.next = entry.next
			}
			entry.next = nil
			return
		}
		prev = entry
	}
}

// GetBucket - Returns the contents of one bucket, the bid held in the slot itself plus
// every chained bid in chain order.
//   - bucketNo is the bucket to fetch, valid numbers range from 0 to table size - 1
//
// It returns:
//   - bucket is a Bucket struct with the slot and chain contents
//   - err is a standard Go error if bucketNo is outside the table
func (H *HashTable) GetBucket(bucketNo int64) (bucket Bucket, err error) {
	if bucketNo < 0 || bucketNo >= H.tableSize {
		err = fmt.Errorf("bucket number %d is outside valid range 0 to %d", bucketNo, H.tableSize-1)
		return
	}

	s := &H.slots[bucketNo]
	bucket = Bucket{BucketNo: bucketNo}

	if s.state == slotEmpty {
		return
	}

	bucket.HasBid = true
	bucket.Bid = s.bid
	for entry := s.chain; entry != nil; entry = entry.next {
		bucket.Chained = append(bucket.Chained, entry.bid)
	}

	return
}

// Bucket - Represents the contents of one bucket as returned by GetBucket.
//   - BucketNo is the bucket number the contents were fetched from
//   - HasBid tells whether the slot is occupied at all
//   - Bid is the bid held directly in the slot, valid only when HasBid is true
//   - Chained holds the overflow bids in chain order, nil when there is no chain
type Bucket struct {
	BucketNo int64
	HasBid   bool
	Bid      Bid
	Chained  []Bid
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Bids is the total number of bids stored
//   - SlotBids is the number of bids held directly in slots
//   - ChainedBids is the number of bids that ended up in overflow chains
//   - BucketDistribution is the number of bids stored in each bucket
type HashTableStat struct {
	Bids               int64
	SlotBids           int64
	ChainedBids        int64
	BucketDistribution []int64
}

// Stat - Walks through the entire set of buckets and produces a HashTableStat struct
// with occupancy information. This complements Size, which only reports capacity.
//   - includeDistribution set to true will include a slice of length Size with number of bids per bucket, false will set HashTableStat.BucketDistribution to nil
func (H *HashTable) Stat(includeDistribution bool) (hashTableStat *HashTableStat) {
	var hts HashTableStat

	if includeDistribution {
		hts.BucketDistribution = make([]int64, H.tableSize)
	}

	for i := int64(0); i < H.tableSize; i++ {
		s := &H.slots[i]
		if s.state == slotEmpty {
			continue
		}

		hts.Bids++
		hts.SlotBids++
		if includeDistribution {
			hts.BucketDistribution[i]++
		}

		for entry := s.chain; entry != nil; entry = entry.next {
			hts.Bids++
			hts.ChainedBids++
			if includeDistribution {
				hts.BucketDistribution[i]++
			}
		}
	}

	hashTableStat = &hts
	return
}
