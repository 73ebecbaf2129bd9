package rpc

import (
	"context"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/vmkteam/zenrpc/v2"
)

// SettingsService provides RPC methods for the settings record.
type SettingsService struct {
	zenrpc.Service
	manager *campus.Manager
}

func NewSettingsService(manager *campus.Manager) *SettingsService {
	return &SettingsService{manager: manager}
}

// Get returns the settings, creating them with defaults on first access.
//
//zenrpc:return settings
//zenrpc:500 internal error
func (s *SettingsService) Get(ctx context.Context) (*campus.Settings, error) {
	settings, err := s.manager.Settings(ctx)
	if err != nil {
		return nil, newError(err)
	}
	return settings, nil
}

// Update merges the present fields of patch into the settings.
//
//zenrpc:patch fields to change
//zenrpc:return updated settings
//zenrpc:400 invalid settings
//zenrpc:500 internal error
func (s *SettingsService) Update(ctx context.Context, patch campus.SettingsPatch) (*campus.Settings, error) {
	settings, err := s.manager.UpdateSettings(ctx, patch)
	if err != nil {
		return nil, newError(err)
	}
	return settings, nil
}
