package handlers

import (
	"sync"
	"time"
)

// BlockRecord is a successful hold kept by the sandbox gateway.
type BlockRecord struct {
	OrderID   string `json:"order_id"`
	Amount    string `json:"amount"`
	Merchant  string `json:"merchant"`
	Timestamp string `json:"timestamp"`
}

const recentBlocksLimit = 100

// BlockStore remembers every order id that was blocked, newest first.
type BlockStore struct {
	orders map[string]struct{}
	recent []BlockRecord
	mutex  sync.RWMutex
}

func NewBlockStore(knownOrderIDs ...string) *BlockStore {
	store := &BlockStore{orders: make(map[string]struct{})}
	for _, id := range knownOrderIDs {
		if id != "" {
			store.orders[id] = struct{}{}
		}
	}
	return store
}

// Reserve records the block unless its order id was used before.
func (s *BlockStore) Reserve(record BlockRecord) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.orders[record.OrderID]; exists {
		return false
	}
	s.orders[record.OrderID] = struct{}{}

	if record.Timestamp == "" {
		record.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	// Only the listing is bounded; duplicate detection keeps every id.
	s.recent = append([]BlockRecord{record}, s.recent...)
	if len(s.recent) > recentBlocksLimit {
		s.recent = s.recent[:recentBlocksLimit]
	}
	return true
}

func (s *BlockStore) Contains(orderID string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	_, ok := s.orders[orderID]
	return ok
}

// Recent returns a copy of the most recent blocks.
func (s *BlockStore) Recent() []BlockRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	result := make([]BlockRecord, len(s.recent))
	copy(result, s.recent)
	return result
}
