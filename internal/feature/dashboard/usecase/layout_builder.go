package usecase

import (
	"market_watch/internal/feature/dashboard/domain/entity"
	symbolentity "market_watch/internal/feature/symbollist/domain/entity"
)

// 画面の固定文言と要素ID
const (
	PageTitle     = "Market Watch Pro"
	Heading       = "Global Market Watch"
	Subtitle      = "Live Financial Data & Graphical Analysis"
	SelectorLabel = "Select Market Asset:"
	SelectorID    = "stock-dropdown"
	GraphID       = "market-chart"
	GraphHeight   = "70vh"
)

// BuildLayout は銘柄一覧から画面構成を組み立てます。
// defaultSymbol は初期選択で、銘柄カタログの先頭を渡します。
func BuildLayout(symbols []symbolentity.Symbol, defaultSymbol string) entity.Layout {
	options := make([]entity.Option, 0, len(symbols))
	for _, s := range symbols {
		options = append(options, entity.Option{Label: s.Name, Value: s.Code})
	}

	return entity.Layout{
		PageTitle:     PageTitle,
		Heading:       Heading,
		Subtitle:      Subtitle,
		SelectorLabel: SelectorLabel,
		SelectorID:    SelectorID,
		Options:       options,
		Default:       defaultSymbol,
		GraphID:       GraphID,
		GraphHeight:   GraphHeight,
	}
}
