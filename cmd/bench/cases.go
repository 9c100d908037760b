// README: Bench cases for the toll API; fee table, premium bands, error mapping and throughput.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
	StatusSkip = "SKIP"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
}

type Result struct {
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		httpc: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	tests := r.cases()
	results := make([]Result, 0, len(tests))

	for _, tc := range tests {
		res := tc.Run(ctx, r)
		results = append(results, res)
		fmt.Printf("%-5s %s", res.Status, tc.Name)
		if res.Latency > 0 {
			fmt.Printf(" (%s)", res.Latency)
		}
		if res.Note != "" {
			fmt.Printf(" - %s", res.Note)
		}
		fmt.Println()
	}
	return results
}

func (r *Runner) cases() []TestCase {
	base := r.cfg.BaseURL
	cases := []TestCase{
		{
			Name: "API: server reachable",
			Run: func(ctx context.Context, r *Runner) Result {
				status, _, latency, err := r.do(ctx, http.MethodGet, base+"/health", nil)
				if err != nil {
					return Result{Status: StatusFail, Note: err.Error()}
				}
				if status != http.StatusOK {
					return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
				}
				return Result{Status: StatusPass, Latency: latency}
			},
		},
		feeCase("Fee: car with one passenger", base, map[string]any{"kind": "car", "passengers": 1}, "2.00"),
		feeCase("Fee: taxi with three fares", base, map[string]any{"kind": "taxi", "fares": 3}, "2.50"),
		feeCase("Fee: bus at half occupancy", base, map[string]any{"kind": "bus", "riders": 25, "capacity": 50}, "5.00"),
		feeCase("Fee: heavy delivery truck", base, map[string]any{"kind": "delivery_truck", "gross_weight_class": 5500}, "15.00"),
		statusCase("Error: missing vehicle", base+"/api/tolls/base", map[string]any{}, http.StatusBadRequest),
		statusCase("Error: unknown vehicle type", base+"/api/tolls/base", map[string]any{"kind": "boat"}, http.StatusUnprocessableEntity),
		premiumCase("Premium: weekday morning inbound", base, "2026-02-09T07:00:00Z", true, "2.00"),
		premiumCase("Premium: weekday evening outbound", base, "2026-02-09T18:00:00Z", false, "2.00"),
		premiumCase("Premium: weekend", base, "2026-02-14T08:00:00Z", true, "1.00"),
		premiumCase("Premium: overnight", base, "2026-02-09T22:00:00Z", true, "0.75"),
	}
	if r.cfg.SkipPerf {
		return append(cases, TestCase{
			Name: "Perf: quote throughput",
			Run: func(ctx context.Context, r *Runner) Result {
				return Result{Status: StatusSkip, Note: "skip-perf=true"}
			},
		})
	}
	return append(cases, TestCase{
		Name: "Perf: quote throughput",
		Run: func(ctx context.Context, r *Runner) Result {
			return perfLoad(ctx, r, base+"/api/tolls/quote", map[string]any{
				"vehicle": map[string]any{"kind": "car", "passengers": 2},
				"inbound": true,
			})
		},
	})
}

func feeCase(name, base string, body map[string]any, wantFee string) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			status, out, latency, err := r.do(ctx, http.MethodPost, base+"/api/tolls/base", body)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			if status != http.StatusOK {
				return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
			}
			if out["fee"] != wantFee {
				return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("fee=%v want %s", out["fee"], wantFee)}
			}
			return Result{Status: StatusPass, Latency: latency}
		},
	}
}

func premiumCase(name, base, at string, inbound bool, want string) TestCase {
	url := fmt.Sprintf("%s/api/tolls/premium?at=%s&inbound=%t", base, at, inbound)
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			status, out, latency, err := r.do(ctx, http.MethodGet, url, nil)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			if status != http.StatusOK {
				return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d", status)}
			}
			if out["premium"] != want {
				return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("premium=%v want %s", out["premium"], want)}
			}
			return Result{Status: StatusPass, Latency: latency}
		},
	}
}

func statusCase(name, url string, body any, want int) TestCase {
	return TestCase{
		Name: name,
		Run: func(ctx context.Context, r *Runner) Result {
			status, _, latency, err := r.do(ctx, http.MethodPost, url, body)
			if err != nil {
				return Result{Status: StatusFail, Note: err.Error()}
			}
			if status != want {
				return Result{Status: StatusFail, Latency: latency, Note: fmt.Sprintf("status=%d want %d", status, want)}
			}
			return Result{Status: StatusPass, Latency: latency}
		},
	}
}

func (r *Runner) do(ctx context.Context, method, url string, body any) (int, map[string]any, time.Duration, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, 0, err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	latency := time.Since(start)

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, latency, err
	}
	// /health answers plain text
	_ = json.Unmarshal(raw, &out)
	return resp.StatusCode, out, latency, nil
}

const (
	perfBackoffStep      = 20 * time.Millisecond
	perfBackoffMax       = 200 * time.Millisecond
	perfMaxTransportErrs = 10
)

// perfLoad counts only 200 responses as completed. A worker backs off after
// each transport error and gives up after perfMaxTransportErrs in a row.
func perfLoad(ctx context.Context, r *Runner, url string, payload any) Result {
	b, err := json.Marshal(payload)
	if err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Duration)
	defer cancel()

	var count, errCount atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < r.cfg.Concurrency; i++ {
		g.Go(func() error {
			failures := 0
			for gctx.Err() == nil {
				req, err := http.NewRequestWithContext(gctx, http.MethodPost, url, bytes.NewReader(b))
				if err != nil {
					return err
				}
				req.Header.Set("Content-Type", "application/json")
				resp, err := r.httpc.Do(req)
				if err != nil {
					if gctx.Err() != nil {
						return nil
					}
					errCount.Add(1)
					failures++
					if failures >= perfMaxTransportErrs {
						return fmt.Errorf("server unreachable after %d attempts: %w", failures, err)
					}
					if !sleepCtx(gctx, backoff(failures)) {
						return nil
					}
					continue
				}
				failures = 0
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					errCount.Add(1)
					continue
				}
				count.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{Status: StatusFail, Note: err.Error()}
	}

	if count.Load() == 0 {
		return Result{Status: StatusFail, Note: fmt.Sprintf("no requests completed errors=%d", errCount.Load())}
	}
	rps := float64(count.Load()) / r.cfg.Duration.Seconds()
	return Result{Status: StatusPass, Note: fmt.Sprintf("rps=%.1f errors=%d", rps, errCount.Load())}
}

func backoff(failures int) time.Duration {
	d := time.Duration(failures) * perfBackoffStep
	if d > perfBackoffMax {
		return perfBackoffMax
	}
	return d
}

// sleepCtx reports false when ctx ended before d elapsed.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
