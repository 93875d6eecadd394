package repository

import (
	"context"

	"telegramNewsBot/internal/domain/entity"
)

// FingerprintRepository はセッションをまたぐ重複抑止の記録を提供する
// インターフェース。保持件数は entity.MaxFingerprintRecords に制限され、
// 超過時は最も古い記録から破棄されます。
type FingerprintRepository interface {
	// IsDuplicate は既存記録とフィンガープリントまたはカテゴリが一致するか
	IsDuplicate(ctx context.Context, fp *entity.ContentFingerprint) (bool, error)

	// Record は判定結果によらず新しい記録を先頭に追加します
	Record(ctx context.Context, fp *entity.ContentFingerprint) error
}
