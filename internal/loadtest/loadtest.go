// Package loadtest replays the item service benchmark: every iteration fires
// the root, item lookup and item creation requests as one parallel batch and
// records their latency and check failures.
package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/isparth/Distributed-Systems/items-api/internal/types"
)

// Scenario is one request of a batch and the checks applied to its reply.
type Scenario struct {
	Name        string
	ErrorMetric string
	Method      string
	Path        string
	Body        interface{}
	Status      int
	// Check inspects the reply body after the status matched. Optional.
	Check func(body []byte) error
	// Thresholded scenarios must keep p95 under Config.Threshold.
	Thresholded bool
}

func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name:        "Show_root",
			ErrorMetric: "Root_errors",
			Method:      http.MethodGet,
			Path:        "/",
			Status:      http.StatusOK,
			Thresholded: true,
		},
		{
			Name:        "Show_item_one",
			ErrorMetric: "Item_errors",
			Method:      http.MethodGet,
			Path:        "/items/1",
			Status:      http.StatusOK,
			Check:       expectItem("David Bowie"),
			Thresholded: true,
		},
		{
			Name:        "Create_item",
			ErrorMetric: "Create_item_error",
			Method:      http.MethodPost,
			Path:        "/items/",
			Body:        types.Item{Index: "3", Name: "Under pressure"},
			Status:      http.StatusCreated,
		},
	}
}

func expectItem(name string) func([]byte) error {
	return func(body []byte) error {
		var resp types.ItemResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return err
		}
		if resp.Item != name {
			return fmt.Errorf("item is %q, want %q", resp.Item, name)
		}
		return nil
	}
}

type Config struct {
	BaseURL     string
	Iterations  int
	Concurrency int
	// Threshold is the p95 latency limit of thresholded scenarios.
	Threshold time.Duration
	// Pause is slept after every batch.
	Pause     time.Duration
	Scenarios []Scenario
}

func DefaultConfig() Config {
	return Config{
		BaseURL:     "http://127.0.0.1:8000",
		Iterations:  100,
		Concurrency: 10,
		Threshold:   500 * time.Millisecond,
	}
}

var ErrInvalidConfig = errors.New("invalid load test config")

func (c Config) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base url is required", ErrInvalidConfig)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive", ErrInvalidConfig)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("%w: concurrency must be positive", ErrInvalidConfig)
	}
	return nil
}

// Run executes cfg.Iterations batches with at most cfg.Concurrency batches in
// flight. Failed checks are recorded in the report, not returned.
func Run(ctx context.Context, client *http.Client, cfg Config) (*Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if client == nil {
		client = http.DefaultClient
	}
	scenarios := cfg.Scenarios
	if len(scenarios) == 0 {
		scenarios = DefaultScenarios()
	}

	report := newReport(scenarios, cfg.Threshold)
	base := strings.TrimRight(cfg.BaseURL, "/")

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i := 0; i < cfg.Iterations; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := runBatch(gctx, client, base, report); err != nil {
				return err
			}
			return pause(gctx, cfg.Pause)
		})
	}
	err := g.Wait()
	report.Elapsed = time.Since(start)
	if err != nil {
		return report, err
	}
	return report, ctx.Err()
}

func runBatch(ctx context.Context, client *http.Client, base string, report *Report) error {
	var g errgroup.Group
	for _, res := range report.Results {
		res := res
		g.Go(func() error {
			d, err := do(ctx, client, base, res.Scenario)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			res.record(d, err)
			return nil
		})
	}
	return g.Wait()
}

func do(ctx context.Context, client *http.Client, base string, sc Scenario) (time.Duration, error) {
	var body io.Reader
	if sc.Body != nil {
		b, err := json.Marshal(sc.Body)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, sc.Method, base+sc.Path, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return time.Since(start), err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	d := time.Since(start)
	if err != nil {
		return d, err
	}

	if resp.StatusCode != sc.Status {
		return d, fmt.Errorf("status is %d, want %d", resp.StatusCode, sc.Status)
	}
	if sc.Check != nil {
		return d, sc.Check(b)
	}
	return d, nil
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
