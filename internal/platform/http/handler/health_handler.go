// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse は /healthz のレスポンスです。
type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}

// NewHealth は /healthz 用のハンドラーを返します。
// provider には現在選択されているマーケットデータのプロバイダー名を渡します。
// 上流APIへの疎通は確認しません。
func NewHealth(provider string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, HealthResponse{Status: "ok", Provider: provider})
		}
	}
}
