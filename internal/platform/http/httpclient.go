// Package http は外部マーケットAPI呼び出し用のHTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient はプロバイダー呼び出し用に設定されたHTTPクライアントを作成します。
//
// timeout が 0 の場合、クライアント全体のタイムアウトは設定しません。
// その場合でもリクエストのcontextがキャンセルされれば呼び出しは中断されます。
// ダイヤルとTLSハンドシェイクには常に個別の上限があります。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	if timeout < 0 {
		timeout = 0
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
