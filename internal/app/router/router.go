// Package router はHTTPルーティングを定義します。
package router

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	candleshandler "market_watch/internal/feature/candles/transport/handler"
	dashboardhandler "market_watch/internal/feature/dashboard/transport/handler"
	symbollisthandler "market_watch/internal/feature/symbollist/transport/handler"
	"market_watch/internal/platform/logger"
)

// Handlers はルーターに登録するハンドラーの集合です。
type Handlers struct {
	Dashboard *dashboardhandler.DashboardHandler
	Candles   *candleshandler.CandlesHandler
	Symbols   *symbollisthandler.SymbolHandler
	Health    gin.HandlerFunc
}

// NewRouter はミドルウェアとルートを登録したgin.Engineを返します。
// 認証はありません。
func NewRouter(log *zap.Logger, tmpl *template.Template, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(logger.GinLogger(log), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	// 導通確認用
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)

	// ダッシュボード画面
	r.GET("/", h.Dashboard.Page)
	// 銘柄選択ごとのチャート更新（iframe用HTML）
	r.GET("/chart", h.Dashboard.Chart)
	r.GET("/chart/:symbol", h.Dashboard.Chart)

	api := r.Group("/api")
	{
		api.GET("/figure", h.Dashboard.Figure)
		api.GET("/figure/:symbol", h.Dashboard.Figure)
		api.GET("/candles/:code", h.Candles.GetCandlesHandler)
	}
	r.GET("/symbols", h.Symbols.List)

	return r
}
