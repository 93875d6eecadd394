package entity

import (
	"errors"
	"fmt"
)

// ErrNotConfigured は必須設定（トークン・チャンネルID・フィード）が欠けている状態
var ErrNotConfigured = errors.New("bot is not fully configured")

// ErrNothingToPublish は変換結果が全滅しメッセージを組み立てられない状態
var ErrNothingToPublish = errors.New("no usable transform results for this item")

// FetchError はフィードの取得・解析失敗
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch feed %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// OracleError はAI補完エンドポイントの呼び出し失敗（到達不能・不正JSON）
type OracleError struct {
	Call string
	Err  error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle call %s failed: %v", e.Call, e.Err)
}

func (e *OracleError) Unwrap() error { return e.Err }

// PublishError は配信先APIの拒否または到達不能
type PublishError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *PublishError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("publish %s failed with status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("publish %s failed: %v", e.Op, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }
