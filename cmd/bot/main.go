package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"IndexPulse/internal/collector"
	"IndexPulse/internal/config"
	"IndexPulse/internal/notifier"
	"IndexPulse/internal/recorder"
	"IndexPulse/internal/scheduler"
	"IndexPulse/internal/strategy"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] IndexPulse starting...")

	once := flag.Bool("once", false, "run the pipeline once and exit")
	flag.Parse()

	// Local .env is optional; missing file is the normal case in deployment.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.CSVURL != "" {
		fetcher = collector.NewCSVFetcher(cfg.DataSource.CSVURL, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	if !tn.Configured() {
		log.Println("[WARN] telegram credentials missing, notifications will be logged only")
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	policy := strategy.DefaultPolicy()
	policy.BuyBelow = cfg.Signal.BuyBelow
	policy.SellAbove = cfg.Signal.SellAbove

	job := scheduler.NewJob(fetcher, cfg.DataSource.Symbol, cfg.DataSource.Period,
		cfg.DataSource.Interval, policy, cfg.NotifyHold(), tn, rec)

	// Run-once mode: the scheduler invoking us is external, exit status
	// signals the outcome.
	if *once || cfg.Schedule.DailyCron == "" {
		if err := job.RunOnce(); err != nil {
			log.Printf("[ERROR] run failed: %v", err)
			os.Exit(1)
		}
		log.Println("[INFO] run completed")
		return
	}

	// Daemon mode: internal cron plus Telegram command polling.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(job)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	go tn.StartPolling(ctx, job.HandleCommand)

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing pipeline now")
		go func() {
			if err := job.RunOnce(); err != nil {
				log.Printf("[ERROR] startup run: %v", err)
			}
		}()
	}

	log.Println("[INFO] IndexPulse is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] IndexPulse stopped")
}
