package repository

import "context"

// MessageRepository は配信先チャンネルへの送信を提供するインターフェース。
// リトライは行いません（必要なら呼び出し側の責務）。
type MessageRepository interface {
	// SendMessage はテキストメッセージを送信します
	SendMessage(ctx context.Context, text string) error

	// SendPhoto は画像URLとキャプションを送信します
	SendPhoto(ctx context.Context, photoURL, caption string) error
}
