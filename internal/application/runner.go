package application

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"telegramNewsBot/internal/domain/entity"
	"telegramNewsBot/internal/domain/repository"
)

const (
	defaultPollInterval      = 5 * time.Minute
	defaultAnalyticsInterval = time.Hour
)

var ErrAlreadyRunning = errors.New("runner already started")

const connectionTestMessage = "🔄 Bot connection test successful!"

type RunnerConfig struct {
	Feeds             []*entity.FeedConfig
	PollInterval      time.Duration
	AnalyticsInterval time.Duration
}

// Runner はポーリングサイクルとアナリティクス更新のスケジューラです。
// Start/Stopの組で1回の稼働となり、Stopでカウンタは破棄されます。
type Runner struct {
	service     *NewsService
	messageRepo repository.MessageRepository
	analytics   repository.AnalyticsRepository
	cfg         RunnerConfig

	mu      sync.Mutex
	state   *RunnerState
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool

	cycleInProgress atomic.Bool
}

func NewRunner(
	service *NewsService,
	messageRepo repository.MessageRepository,
	analytics repository.AnalyticsRepository,
	cfg RunnerConfig,
) *Runner {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.AnalyticsInterval <= 0 {
		cfg.AnalyticsInterval = defaultAnalyticsInterval
	}

	return &Runner{
		service:     service,
		messageRepo: messageRepo,
		analytics:   analytics,
		cfg:         cfg,
	}
}

func (r *Runner) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return ErrAlreadyRunning
	}
	if len(r.cfg.Feeds) == 0 {
		return entity.ErrNotConfigured
	}

	r.state = NewRunnerState()
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})
	r.running = true

	go r.run(r.state, r.stopCh, r.doneCh)

	log.Printf("Runner started: %d feeds, poll interval %s", len(r.cfg.Feeds), r.cfg.PollInterval)
	return nil
}

// Stop は停止を指示し、実行中のサイクルの完了を待ちます。
// 稼働カウンタは破棄され、次のStartはゼロから始まります。
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	stopCh, doneCh := r.stopCh, r.doneCh
	r.running = false
	r.state = nil
	r.mu.Unlock()

	close(stopCh)
	<-doneCh
	log.Print("Runner stopped")
}

func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Stats は現在の稼働統計を返します。停止中はゼロ値です。
func (r *Runner) Stats() entity.RunStats {
	r.mu.Lock()
	state := r.state
	r.mu.Unlock()

	if state == nil {
		return entity.RunStats{}
	}
	return state.Stats(len(r.cfg.Feeds))
}

// TestConnection は送信先チャンネルへ疎通確認メッセージを送ります
func (r *Runner) TestConnection(ctx context.Context) error {
	return r.messageRepo.SendMessage(ctx, connectionTestMessage)
}

func (r *Runner) run(state *RunnerState, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ctx := context.Background()

	r.refreshAnalytics(ctx, state)
	r.runCycle(ctx, state)

	pollTicker := time.NewTicker(r.cfg.PollInterval)
	defer pollTicker.Stop()
	analyticsTicker := time.NewTicker(r.cfg.AnalyticsInterval)
	defer analyticsTicker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-pollTicker.C:
			r.runCycle(ctx, state)
		case <-analyticsTicker.C:
			r.refreshAnalytics(ctx, state)
		}
	}
}

// runCycle は前回サイクルが継続中の場合、今回のtickをスキップします
func (r *Runner) runCycle(ctx context.Context, state *RunnerState) {
	if !r.cycleInProgress.CompareAndSwap(false, true) {
		log.Print("Previous cycle still in progress, skipping this tick")
		return
	}
	defer r.cycleInProgress.Store(false)

	r.service.ProcessAllFeeds(ctx, r.cfg.Feeds, state)
}

// refreshAnalytics の失敗は配信に影響しないため、ログのみ残します
func (r *Runner) refreshAnalytics(ctx context.Context, state *RunnerState) {
	if r.analytics == nil {
		return
	}

	stats := state.Stats(len(r.cfg.Feeds))

	trends, err := r.analytics.AnalyzeTrends(ctx, stats)
	if err != nil {
		log.Printf("Trend analysis failed: %v", err)
	} else if trends != nil {
		log.Printf("Content trends: best topics %v, recommendations %v", trends.BestTopics, trends.Recommendations)
	}

	schedule, err := r.analytics.OptimizeSchedule(ctx, stats)
	if err != nil {
		log.Printf("Schedule optimization failed: %v", err)
	} else if schedule != nil {
		log.Printf("Posting schedule: optimal hours %v, frequency %d/day", schedule.OptimalHours, schedule.RecommendedFrequency)
	}
}
