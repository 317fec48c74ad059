package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"minimalbites/internal/domain"
	"minimalbites/internal/kv"

	"go.uber.org/zap"
)

const (
	// MaxQuantity is the per-line quantity cap
	MaxQuantity = 10

	keyPrefix = "mb_cart:"
)

// Subscriber is notified with the cart id after every mutation
type Subscriber func(cartID string)

// Store owns persisted cart contents, keyed by cart id. Reads degrade
// to an empty cart when the persisted state is absent or unparseable.
// Mutations publish to subscribers after a successful persist.
type Store struct {
	kv     kv.Store
	logger *zap.Logger
	ttl    time.Duration

	// serializes read-modify-write cycles; last write wins across
	// concurrent clients, no conflict detection
	mu sync.Mutex

	subMu sync.RWMutex
	subs  []Subscriber
}

// NewStore creates a cart store on top of the given key-value store. A
// zero ttl keeps carts until explicitly cleared.
func NewStore(store kv.Store, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		kv:     store,
		logger: logger,
		ttl:    ttl,
	}
}

// Subscribe registers fn to be called after every cart mutation
func (s *Store) Subscribe(fn Subscriber) {
	s.subMu.Lock()
	s.subs = append(s.subs, fn)
	s.subMu.Unlock()
}

func (s *Store) notify(cartID string) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()
	for _, fn := range s.subs {
		fn(cartID)
	}
}

// Get returns the cart lines in insertion order. Absent or malformed
// persisted state yields an empty cart, never an error.
func (s *Store) Get(ctx context.Context, cartID string) []domain.CartLine {
	value, err := s.kv.Get(ctx, keyPrefix+cartID)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Warn("Failed to read cart, treating as empty",
				zap.String("cart_id", cartID),
				zap.Error(err),
			)
		}
		return []domain.CartLine{}
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(value), &lines); err != nil {
		s.logger.Warn("Malformed cart state, treating as empty",
			zap.String("cart_id", cartID),
			zap.Error(err),
		)
		return []domain.CartLine{}
	}
	return lines
}

// Add merges quantity into the existing line for item.ID, or appends a
// new line snapshotting the item's name, price and image. Quantities
// cap at MaxQuantity.
func (s *Store) Add(ctx context.Context, cartID string, item domain.MenuItem, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.Get(ctx, cartID)

	found := false
	for i := range lines {
		if lines[i].ID == item.ID {
			lines[i].Quantity = min(MaxQuantity, lines[i].Quantity+quantity)
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, domain.CartLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			ImageURL: item.ImageURL,
			Quantity: min(MaxQuantity, quantity),
		})
	}

	if err := s.persist(ctx, cartID, lines); err != nil {
		return err
	}
	s.notify(cartID)
	return nil
}

// UpdateQuantity sets the quantity on the matching line, capped at
// MaxQuantity. A quantity of zero or less removes the line. Updating an
// absent line is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, cartID string, itemID, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, cartID, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.Get(ctx, cartID)

	found := false
	for i := range lines {
		if lines[i].ID == itemID {
			lines[i].Quantity = min(MaxQuantity, quantity)
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := s.persist(ctx, cartID, lines); err != nil {
		return err
	}
	s.notify(cartID)
	return nil
}

// Remove drops the matching line
func (s *Store) Remove(ctx context.Context, cartID string, itemID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.Get(ctx, cartID)

	kept := lines[:0]
	for _, line := range lines {
		if line.ID != itemID {
			kept = append(kept, line)
		}
	}

	if err := s.persist(ctx, cartID, kept); err != nil {
		return err
	}
	s.notify(cartID)
	return nil
}

// Clear drops the persisted cart entirely
func (s *Store) Clear(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(ctx, keyPrefix+cartID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	s.notify(cartID)
	return nil
}

// Total returns the sum of price * quantity over all lines
func (s *Store) Total(ctx context.Context, cartID string) float64 {
	total := 0.0
	for _, line := range s.Get(ctx, cartID) {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities over all lines
func (s *Store) ItemCount(ctx context.Context, cartID string) int {
	count := 0
	for _, line := range s.Get(ctx, cartID) {
		count += line.Quantity
	}
	return count
}

// Contains reports whether the cart holds a line for itemID
func (s *Store) Contains(ctx context.Context, cartID string, itemID int) bool {
	for _, line := range s.Get(ctx, cartID) {
		if line.ID == itemID {
			return true
		}
	}
	return false
}

// Quantity returns the quantity held for itemID, zero if absent
func (s *Store) Quantity(ctx context.Context, cartID string, itemID int) int {
	for _, line := range s.Get(ctx, cartID) {
		if line.ID == itemID {
			return line.Quantity
		}
	}
	return 0
}

func (s *Store) persist(ctx context.Context, cartID string, lines []domain.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	if err := s.kv.Set(ctx, keyPrefix+cartID, string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
