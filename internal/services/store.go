package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/ports"
)

// StoreService reads and writes the persisted coordinator records
type StoreService struct {
	kv ports.KeyValueStore
}

// NewStoreService creates a new StoreService
func NewStoreService(kv ports.KeyValueStore) *StoreService {
	return &StoreService{kv: kv}
}

// PendingTransfer returns the pending transfer, or nil when none is stored
func (s *StoreService) PendingTransfer(ctx context.Context) (*domain.PendingTransfer, error) {
	var transfer domain.PendingTransfer
	found, err := s.get(ctx, domain.ScopeLocal, domain.PendingTransferKey, &transfer)
	if err != nil || !found {
		return nil, err
	}
	return &transfer, nil
}

// SavePendingTransfer replaces the pending transfer
func (s *StoreService) SavePendingTransfer(ctx context.Context, transfer domain.PendingTransfer) error {
	return s.set(ctx, domain.ScopeLocal, domain.PendingTransferKey, transfer)
}

// ClearPendingTransfer removes the pending transfer
func (s *StoreService) ClearPendingTransfer(ctx context.Context) error {
	return s.kv.Remove(ctx, domain.ScopeLocal, domain.PendingTransferKey)
}

// WindowState returns the saved dialog geometry, or nil when none is stored
func (s *StoreService) WindowState(ctx context.Context) (*domain.WindowState, error) {
	var state domain.WindowState
	found, err := s.get(ctx, domain.ScopeLocal, domain.DialogWindowStateKey, &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}

// SaveWindowState replaces the saved dialog geometry
func (s *StoreService) SaveWindowState(ctx context.Context, state domain.WindowState) error {
	return s.set(ctx, domain.ScopeLocal, domain.DialogWindowStateKey, state)
}

// ClearWindowState removes the saved dialog geometry
func (s *StoreService) ClearWindowState(ctx context.Context) error {
	return s.kv.Remove(ctx, domain.ScopeLocal, domain.DialogWindowStateKey)
}

// Theme returns the dialog theme preference, or "" when unset
func (s *StoreService) Theme(ctx context.Context) (string, error) {
	var theme string
	if _, err := s.get(ctx, domain.ScopeSync, domain.ThemeKey, &theme); err != nil {
		return "", err
	}
	return theme, nil
}

// SetTheme stores the dialog theme preference
func (s *StoreService) SetTheme(ctx context.Context, theme string) error {
	return s.set(ctx, domain.ScopeSync, domain.ThemeKey, theme)
}

func (s *StoreService) get(ctx context.Context, scope domain.StorageScope, key string, out any) (bool, error) {
	data, err := s.kv.Get(ctx, scope, key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s/%s: %w", scope, key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode %s/%s: %w", scope, key, err)
	}
	return true, nil
}

func (s *StoreService) set(ctx context.Context, scope domain.StorageScope, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s/%s: %w", scope, key, err)
	}
	if err := s.kv.Set(ctx, scope, key, data); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", scope, key, err)
	}
	return nil
}
