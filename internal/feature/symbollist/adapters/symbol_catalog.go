// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"slices"

	"market_watch/internal/feature/symbollist/domain/entity"
	"market_watch/internal/feature/symbollist/usecase"
)

// defaultCatalog はセレクターに表示する固定の銘柄一覧です。先頭がデフォルト銘柄になります。
var defaultCatalog = []entity.Symbol{
	{Code: "AAPL", Name: "Apple Inc. (AAPL)", SortKey: 1},
	{Code: "GOOGL", Name: "Google (GOOGL)", SortKey: 2},
	{Code: "MSFT", Name: "Microsoft (MSFT)", SortKey: 3},
	{Code: "TSLA", Name: "Tesla (TSLA)", SortKey: 4},
	{Code: "GC=F", Name: "Gold (GC=F)", SortKey: 5},
	{Code: "ES=F", Name: "S&P 500 (ES=F)", SortKey: 6},
}

// symbolCatalog はSymbolRepositoryインターフェースのインメモリ実装です。
// 一覧は生成後に変更されません。
type symbolCatalog struct {
	symbols []entity.Symbol
}

var _ usecase.SymbolRepository = (*symbolCatalog)(nil)

// NewSymbolCatalog は固定の6銘柄を持つカタログを生成します。
func NewSymbolCatalog() *symbolCatalog {
	return newSymbolCatalog(defaultCatalog)
}

func newSymbolCatalog(symbols []entity.Symbol) *symbolCatalog {
	sorted := slices.Clone(symbols)
	slices.SortStableFunc(sorted, func(a, b entity.Symbol) int { return a.SortKey - b.SortKey })
	return &symbolCatalog{symbols: sorted}
}

// ListActive はsort_key順にすべての銘柄を返します。呼び出し側が変更しても内部状態には影響しません。
func (r *symbolCatalog) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.symbols), nil
}

// ListActiveCodes はsort_key順に銘柄のコードのみを返します。
func (r *symbolCatalog) ListActiveCodes(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(r.symbols))
	for _, s := range r.symbols {
		codes = append(codes, s.Code)
	}
	return codes, nil
}
