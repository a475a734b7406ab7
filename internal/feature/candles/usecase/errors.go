package usecase

import (
	"errors"
	"fmt"
)

// ErrFetchFailed はマーケットデータ取得失敗を表すセンチネルエラーです。
var ErrFetchFailed = errors.New("market data fetch failed")

// FetchError は外部プロバイダーからの取得失敗を銘柄コード付きで包みます。
// errors.Is(err, ErrFetchFailed) と errors.As(err, **FetchError) の両方に対応します。
type FetchError struct {
	Symbol string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Symbol, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is は ErrFetchFailed との比較を可能にします。
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
