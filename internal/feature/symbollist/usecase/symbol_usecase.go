// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"
	"errors"

	"market_watch/internal/feature/symbollist/domain/entity"
)

// ErrEmptyCatalog is returned when no symbol is available to select.
var ErrEmptyCatalog = errors.New("symbol catalog is empty")

// SymbolRepository abstracts the source of selectable symbols.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListActive(ctx context.Context) ([]entity.Symbol, error)
	ListActiveCodes(ctx context.Context) ([]string, error)
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListActiveSymbols returns all selectable symbols in display order.
func (u *SymbolUsecase) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListActive(ctx)
}

// DefaultSymbol returns the code preselected on first load, which is the first symbol in display order.
func (u *SymbolUsecase) DefaultSymbol(ctx context.Context) (string, error) {
	codes, err := u.repo.ListActiveCodes(ctx)
	if err != nil {
		return "", err
	}
	if len(codes) == 0 {
		return "", ErrEmptyCatalog
	}
	return codes[0], nil
}
