package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rumbo/internal/domain"
	"github.com/alexanderramin/rumbo/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) SetTheme(ctx context.Context, theme domain.Theme) (*domain.Settings, error) {
	if theme != domain.ThemeDark && theme != domain.ThemeLight {
		return nil, fmt.Errorf("unknown theme %q (expected dark or light)", theme)
	}

	current, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	current.Theme = theme
	if err := s.settings.Upsert(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
