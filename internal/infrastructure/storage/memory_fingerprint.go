package storage

import (
	"context"
	"sync"
	"time"

	"telegramNewsBot/internal/domain/entity"
	"telegramNewsBot/internal/domain/repository"
)

// memoryFingerprintStore はプロセス内のみのフィンガープリント記録。
// DB_PATH未設定時に使われ、再起動で消えます。
type memoryFingerprintStore struct {
	mu      sync.RWMutex
	records []*entity.FingerprintRecord
}

func NewMemoryFingerprintRepository() repository.FingerprintRepository {
	return &memoryFingerprintStore{}
}

func (s *memoryFingerprintStore) IsDuplicate(ctx context.Context, fp *entity.ContentFingerprint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.Matches(fp) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryFingerprintStore) Record(ctx context.Context, fp *entity.ContentFingerprint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &entity.FingerprintRecord{
		Fingerprint: fp.Fingerprint,
		Category:    fp.Category,
		Timestamp:   time.Now(),
	}

	s.records = append([]*entity.FingerprintRecord{record}, s.records...)
	if len(s.records) > entity.MaxFingerprintRecords {
		s.records = s.records[:entity.MaxFingerprintRecords]
	}
	return nil
}
