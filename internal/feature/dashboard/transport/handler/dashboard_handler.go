// Package handler はdashboardフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"market_watch/internal/feature/dashboard/domain/entity"
	"market_watch/internal/feature/dashboard/transport/http/dto"
)

// PageTemplate はダッシュボード画面のテンプレート名です。
const PageTemplate = "index.tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates は埋め込みテンプレートを読み込みます。gin.Engine.SetHTMLTemplate に渡して使います。
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.tmpl")
}

// FigureUsecase はチャート更新のユースケースインターフェースです。
type FigureUsecase interface {
	UpdateFigure(ctx context.Context, symbol string) (entity.Figure, error)
}

// ChartRenderer はFigureをHTMLに描画します。
type ChartRenderer interface {
	Render(w io.Writer, fig entity.Figure) error
}

// DashboardHandler はダッシュボード画面とチャート更新のHTTPリクエストを処理します。
type DashboardHandler struct {
	uc       FigureUsecase
	renderer ChartRenderer
	layout   entity.Layout
	log      *zap.Logger
	verbose  bool
}

// NewDashboardHandler はDashboardHandlerを生成します。
// layout は起動時に一度だけ組み立てたものを渡します。
// verbose が true の場合、エラー詳細をレスポンスに含めます（デバッグモード用）。
func NewDashboardHandler(uc FigureUsecase, renderer ChartRenderer, layout entity.Layout, log *zap.Logger, verbose bool) *DashboardHandler {
	return &DashboardHandler{uc: uc, renderer: renderer, layout: layout, log: log, verbose: verbose}
}

// Page はダッシュボード画面を返します。
//
// エンドポイント例:
// GET /
func (h *DashboardHandler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, PageTemplate, h.layout)
}

// Figure は選択された銘柄のチャート定義をJSONで返します。
// パスに銘柄がない場合はデフォルト銘柄になります。
//
// エンドポイント例:
// GET /api/figure/:symbol
func (h *DashboardHandler) Figure(c *gin.Context) {
	fig, ok := h.update(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.FromFigure(fig))
}

// Chart は選択された銘柄のチャートをHTMLで返します。画面のiframeから読み込まれます。
//
// エンドポイント例:
// GET /chart/:symbol
func (h *DashboardHandler) Chart(c *gin.Context) {
	fig, ok := h.update(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, fig); err != nil {
		h.log.Error("failed to render chart", zap.String("symbol", fig.Symbol), zap.Error(err))
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// update はチャートを取得し、失敗時は502を書き込んで false を返します。
func (h *DashboardHandler) update(c *gin.Context) (entity.Figure, bool) {
	symbol := c.Param("symbol")

	fig, err := h.uc.UpdateFigure(c.Request.Context(), symbol)
	if err != nil {
		h.log.Error("failed to update figure", zap.String("symbol", symbol), zap.Error(err))
		h.fail(c, http.StatusBadGateway, err)
		return entity.Figure{}, false
	}
	return fig, true
}

func (h *DashboardHandler) fail(c *gin.Context, status int, err error) {
	msg := http.StatusText(status)
	if h.verbose {
		msg = err.Error()
	}
	c.JSON(status, dto.ErrorResponse{Error: msg})
}
