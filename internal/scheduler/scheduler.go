package scheduler

import (
	"fmt"
	"log"
	"sync"

	"IndexPulse/internal/collector"
	"IndexPulse/internal/model"
	"IndexPulse/internal/normalize"
	"IndexPulse/internal/notifier"
	"IndexPulse/internal/recorder"
	"IndexPulse/internal/strategy"

	"github.com/robfig/cron/v3"
)

// Job runs the fetch -> normalize -> analyze -> notify pipeline.
type Job struct {
	Fetcher    collector.Fetcher
	Symbol     string
	Period     string
	Interval   string
	Policy     strategy.Policy
	NotifyHold bool
	Notifier   *notifier.TelegramNotifier
	Recorder   recorder.Recorder

	mu   sync.Mutex
	last *model.AnalysisResult
}

// NewJob creates a pipeline job.
func NewJob(f collector.Fetcher, symbol, period, interval string, policy strategy.Policy,
	notifyHold bool, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Job {
	return &Job{
		Fetcher:    f,
		Symbol:     symbol,
		Period:     period,
		Interval:   interval,
		Policy:     policy,
		NotifyHold: notifyHold,
		Notifier:   tn,
		Recorder:   rec,
	}
}

// RunOnce executes one pipeline run. Fatal errors from fetch, normalize
// or analyze are best-effort notified and returned so the caller can
// exit non-zero; notification failure alone never fails the run.
func (j *Job) RunOnce() error {
	log.Printf("[INFO] running pipeline for %s (%s/%s) via %s",
		j.Symbol, j.Period, j.Interval, j.Fetcher.Name())

	table, err := j.Fetcher.FetchDailyTable(j.Symbol, j.Period, j.Interval)
	if err != nil {
		return j.fail(fmt.Errorf("fetch: %w", err))
	}

	series, err := normalize.Series(j.Symbol, table)
	if err != nil {
		return j.fail(fmt.Errorf("normalize: %w", err))
	}

	result, err := strategy.Evaluate(series, j.Policy)
	if err != nil {
		return j.fail(fmt.Errorf("analyze: %w", err))
	}

	j.mu.Lock()
	j.last = result
	j.mu.Unlock()

	text := notifier.FormatSummary(result)
	log.Printf("[INFO] analysis:\n%s", text)

	notified := false
	if result.Signal == model.SignalHold && !j.NotifyHold {
		log.Println("[INFO] HOLD signal, notification suppressed by config")
	} else {
		notified = j.Notifier.Notify(text)
	}

	if err := j.Recorder.RecordRun(&recorder.RunRecord{
		Symbol:   result.Symbol,
		BarDate:  result.Date,
		Close:    result.Close,
		RSI:      result.RSI,
		Signal:   string(result.Signal),
		Notified: notified,
	}); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	return nil
}

func (j *Job) fail(err error) error {
	log.Printf("[ERROR] pipeline: %v", err)
	j.Notifier.Notify(notifier.FormatError(j.Symbol, err))
	return err
}

// LastResult returns the most recent successful analysis, if any.
func (j *Job) LastResult() *model.AnalysisResult {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.last
}

// HandleCommand processes a user command and returns a reply.
func (j *Job) HandleCommand(command string) string {
	switch command {
	case "/now":
		go func() {
			if err := j.RunOnce(); err != nil {
				log.Printf("[ERROR] manual run: %v", err)
			}
		}()
		return "Running analysis now..."
	case "/status":
		if res := j.LastResult(); res != nil {
			return notifier.FormatSummary(res)
		}
		return "No analysis has completed yet."
	default:
		return "Available commands:\n• /now — run the analysis\n• /status — last result"
	}
}

// Scheduler manages the cron-driven daemon mode.
type Scheduler struct {
	Cron *cron.Cron
	Job  *Job
}

// NewScheduler creates a scheduler around the given job.
func NewScheduler(job *Job) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Job:  job,
	}
}

// Register adds the daily pipeline entry.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, func() {
		if err := s.Job.RunOnce(); err != nil {
			log.Printf("[ERROR] scheduled run: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}
