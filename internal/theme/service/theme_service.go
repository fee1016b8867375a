package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/swadhinshop/pos-backend-go/internal/theme/repository"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

var ErrInvalidTheme = errors.New("invalid theme")

type ThemeService interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, theme string) error
}

type themeServiceImpl struct {
	repo repository.ThemeRepository
}

func NewThemeService(repo repository.ThemeRepository) ThemeService {
	return &themeServiceImpl{repo: repo}
}

func (s *themeServiceImpl) Get(ctx context.Context) (string, error) {
	theme, err := s.repo.Load(ctx)
	if err != nil {
		return "", err
	}
	if theme != ThemeDark {
		// Anything unset or unknown falls back to light.
		return ThemeLight, nil
	}
	return theme, nil
}

func (s *themeServiceImpl) Set(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("%w: %q (want %q or %q)", ErrInvalidTheme, theme, ThemeLight, ThemeDark)
	}
	return s.repo.Save(ctx, theme)
}
