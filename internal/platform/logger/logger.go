// Package logger はzapロガーの生成とginのリクエストログ用ミドルウェアを提供します。
package logger

import (
	"errors"
	"fmt"
	"syscall"

	"go.uber.org/zap"
)

// NewLogger はzapロガーを生成し、グローバルロガーとして登録します。
// debug が true の場合は開発用のコンソール出力、false の場合は本番用のJSON出力になります。
// 返り値の関数はプロセス終了時に呼び出してバッファをフラッシュします。
func NewLogger(debug bool) (*zap.Logger, func(), error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("can't init logger: %w", err)
	}
	zap.ReplaceGlobals(l)

	syncFunc := func() {
		// 端末やパイプへの出力ではSyncがEBADF/ENOTTYを返す
		if err := l.Sync(); err != nil && !errors.Is(err, syscall.EBADF) && !errors.Is(err, syscall.ENOTTY) {
			l.Error("can't sync logger", zap.Error(err))
		}
	}
	return l, syncFunc, nil
}
