// README: Smoke and throughput runner for a live toll API; prints one line per case.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func main() {
	cfg := loadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	bench := NewRunner(cfg)
	results := bench.RunAll(ctx)

	fmt.Println("\n== Summary ==")
	pass, fail, skipped := 0, 0, 0
	for _, r := range results {
		switch r.Status {
		case StatusPass:
			pass++
		case StatusFail:
			fail++
		case StatusSkip:
			skipped++
		}
	}
	fmt.Printf("PASS=%d FAIL=%d SKIP=%d\n", pass, fail, skipped)

	if fail > 0 {
		os.Exit(1)
	}
}

type Config struct {
	BaseURL     string
	Timeout     time.Duration
	Concurrency int
	Duration    time.Duration
	SkipPerf    bool
}

// loadConfig takes TOLL_BENCH_* environment defaults, overridden by flags.
func loadConfig() Config {
	v := viper.New()
	v.SetEnvPrefix("TOLL_BENCH")
	v.AutomaticEnv()
	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("timeout", 60*time.Second)
	v.SetDefault("concurrency", 20)
	v.SetDefault("duration", 10*time.Second)
	v.SetDefault("skip_perf", false)

	var cfg Config
	flag.StringVar(&cfg.BaseURL, "base-url", v.GetString("base_url"), "API base URL")
	flag.DurationVar(&cfg.Timeout, "timeout", v.GetDuration("timeout"), "Total timeout")
	flag.IntVar(&cfg.Concurrency, "concurrency", v.GetInt("concurrency"), "Concurrency for perf tests")
	flag.DurationVar(&cfg.Duration, "duration", v.GetDuration("duration"), "Duration for perf tests")
	flag.BoolVar(&cfg.SkipPerf, "skip-perf", v.GetBool("skip_perf"), "Skip throughput cases")
	flag.Parse()
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return cfg
}
