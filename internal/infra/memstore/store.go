// Package memstore keeps per-user alerts, holdings, favorites and balances in
// process memory.
//
// Every user has an own mutex, so operations on one user are linearizable and
// operations on different users never wait for each other. State lives for the
// lifetime of the process.
package memstore

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/NasaVasa/cryptobot/internal/domain"
	"github.com/shopspring/decimal"
)

type Store struct {
	users  sync.Map // domain.UserID -> *userState
	nextID atomic.Uint64
}

type userState struct {
	mu        sync.Mutex
	alerts    []domain.Alert
	holdings  map[string]decimal.Decimal
	assets    []string // holdings in insertion order
	favorites []string
	balance   decimal.Decimal
}

func New() *Store {
	return &Store{}
}

// user returns the state for userID, creating it on first write.
func (s *Store) user(userID domain.UserID) *userState {
	if state, ok := s.users.Load(userID); ok {
		return state.(*userState)
	}
	state, _ := s.users.LoadOrStore(userID, &userState{holdings: make(map[string]decimal.Decimal)})
	return state.(*userState)
}

// peek returns the state for userID without creating it.
func (s *Store) peek(userID domain.UserID) (*userState, bool) {
	state, ok := s.users.Load(userID)
	if !ok {
		return nil, false
	}
	return state.(*userState), true
}

func (s *Store) ListAlerts(userID domain.UserID) []domain.Alert {
	state, ok := s.peek(userID)
	if !ok {
		return []domain.Alert{}
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	return append([]domain.Alert(nil), state.alerts...)
}

func (s *Store) AddAlert(userID domain.UserID, alert domain.Alert) (domain.Alert, error) {
	if !alert.TargetPrice.IsPositive() {
		return domain.Alert{}, fmt.Errorf("%w: target price must be positive", domain.ErrInvalidAmount)
	}
	alert.ID = s.nextID.Add(1)

	state := s.user(userID)
	state.mu.Lock()
	defer state.mu.Unlock()
	state.alerts = append(state.alerts, alert)
	return alert, nil
}

// RemoveAlertAt removes the alert at the zero-based index. Indexes are only
// meaningful against the most recent listing: a concurrent insert or removal
// between listing and deleting shifts them.
func (s *Store) RemoveAlertAt(userID domain.UserID, index int) (domain.Alert, error) {
	state, ok := s.peek(userID)
	if !ok {
		return domain.Alert{}, fmt.Errorf("alert #%d: %w", index+1, domain.ErrNotFound)
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	if index < 0 || index >= len(state.alerts) {
		return domain.Alert{}, fmt.Errorf("alert #%d: %w", index+1, domain.ErrNotFound)
	}
	removed := state.alerts[index]
	state.alerts = append(state.alerts[:index:index], state.alerts[index+1:]...)
	return removed, nil
}

// RemoveAlert removes the alert with alertID if it is still present.
func (s *Store) RemoveAlert(userID domain.UserID, alertID uint64) bool {
	state, ok := s.peek(userID)
	if !ok {
		return false
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	for i, alert := range state.alerts {
		if alert.ID == alertID {
			state.alerts = append(state.alerts[:i:i], state.alerts[i+1:]...)
			return true
		}
	}
	return false
}

// SnapshotAlerts copies every user's alerts, holding each user's lock only for
// the copy. Users without alerts are omitted.
func (s *Store) SnapshotAlerts() map[domain.UserID][]domain.Alert {
	snapshot := make(map[domain.UserID][]domain.Alert)
	s.users.Range(func(key, value any) bool {
		state := value.(*userState)
		state.mu.Lock()
		if len(state.alerts) > 0 {
			snapshot[key.(domain.UserID)] = append([]domain.Alert(nil), state.alerts...)
		}
		state.mu.Unlock()
		return true
	})
	return snapshot
}

func (s *Store) GetPortfolio(userID domain.UserID) []domain.Holding {
	state, ok := s.peek(userID)
	if !ok {
		return []domain.Holding{}
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	holdings := make([]domain.Holding, 0, len(state.assets))
	for _, assetID := range state.assets {
		holdings = append(holdings, domain.Holding{AssetID: assetID, Quantity: state.holdings[assetID]})
	}
	return holdings
}

// AddHolding adds quantity to the asset's holding and returns the new quantity.
func (s *Store) AddHolding(userID domain.UserID, assetID string, quantity decimal.Decimal) (decimal.Decimal, error) {
	if !quantity.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidAmount)
	}

	state := s.user(userID)
	state.mu.Lock()
	defer state.mu.Unlock()
	current, ok := state.holdings[assetID]
	if !ok {
		state.assets = append(state.assets, assetID)
	}
	updated := current.Add(quantity)
	state.holdings[assetID] = updated
	return updated, nil
}

// RemoveHolding deletes the whole holding for assetID.
func (s *Store) RemoveHolding(userID domain.UserID, assetID string) error {
	state, ok := s.peek(userID)
	if !ok {
		return fmt.Errorf("holding %s: %w", assetID, domain.ErrNotFound)
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	if _, ok := state.holdings[assetID]; !ok {
		return fmt.Errorf("holding %s: %w", assetID, domain.ErrNotFound)
	}
	delete(state.holdings, assetID)
	state.assets = removeString(state.assets, assetID)
	return nil
}

func (s *Store) ListFavorites(userID domain.UserID) []string {
	state, ok := s.peek(userID)
	if !ok {
		return []string{}
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	return append([]string{}, state.favorites...)
}

func (s *Store) AddFavorite(userID domain.UserID, assetID string) domain.FavoriteResult {
	state := s.user(userID)
	state.mu.Lock()
	defer state.mu.Unlock()
	for _, favorite := range state.favorites {
		if favorite == assetID {
			return domain.FavoriteAlreadyPresent
		}
	}
	state.favorites = append(state.favorites, assetID)
	return domain.FavoriteAdded
}

func (s *Store) RemoveFavorite(userID domain.UserID, assetID string) error {
	state, ok := s.peek(userID)
	if !ok {
		return fmt.Errorf("favorite %s: %w", assetID, domain.ErrNotFound)
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	updated := removeString(state.favorites, assetID)
	if len(updated) == len(state.favorites) {
		return fmt.Errorf("favorite %s: %w", assetID, domain.ErrNotFound)
	}
	state.favorites = updated
	return nil
}

func (s *Store) GetBalance(userID domain.UserID) decimal.Decimal {
	state, ok := s.peek(userID)
	if !ok {
		return decimal.Zero
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.balance
}

// CreditBalance adds amount to the balance and returns the new balance.
func (s *Store) CreditBalance(userID domain.UserID, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: credit must be positive", domain.ErrInvalidAmount)
	}

	state := s.user(userID)
	state.mu.Lock()
	defer state.mu.Unlock()
	state.balance = state.balance.Add(amount)
	return state.balance, nil
}

func removeString(values []string, target string) []string {
	for i, value := range values {
		if value == target {
			return append(values[:i:i], values[i+1:]...)
		}
	}
	return values
}
