package application

import (
	"sync"
	"time"

	"telegramNewsBot/internal/domain/entity"
)

// RunnerState は稼働中のRunnerが所有する可変状態。Startで生成され、
// Stopで破棄されます。ウォーターマークは永続化されないため、再起動後は
// フィンガープリントストアだけが重複の防波堤になります。
type RunnerState struct {
	mu         sync.Mutex
	watermarks map[string]time.Time
	postCount  int
	startTime  time.Time
}

func NewRunnerState() *RunnerState {
	return &RunnerState{
		watermarks: make(map[string]time.Time),
		startTime:  time.Now(),
	}
}

// Watermark はフィードの処理済み境界を返します（未処理ならゼロ値）
func (s *RunnerState) Watermark(feedURL string) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watermarks[feedURL]
}

// AdvanceWatermark はウォーターマークを前進させます。後退はしません。
func (s *RunnerState) AdvanceWatermark(feedURL string, t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.After(s.watermarks[feedURL]) {
		s.watermarks[feedURL] = t
	}
}

func (s *RunnerState) RecordPost() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.postCount++
}

func (s *RunnerState) Stats(activeFeeds int) entity.RunStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return entity.RunStats{
		PostCount:   s.postCount,
		ActiveFeeds: activeFeeds,
		Uptime:      time.Since(s.startTime),
	}
}
