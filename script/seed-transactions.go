package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Transaction is the create payload accepted by POST /transactions/
type Transaction struct {
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// WeeklyEntry is one row of GET /report/weekly
type WeeklyEntry struct {
	Week    string  `json:"week"`
	Credit  float64 `json:"credit"`
	Debit   float64 `json:"debit"`
	Balance float64 `json:"balance"`
}

// SeedScenario is a weighted transaction template
type SeedScenario struct {
	Type        string
	Description string
	MinAmount   float64
	MaxAmount   float64
}

// SeedStats contains aggregated seeding statistics
type SeedStats struct {
	mu            sync.Mutex
	Succeeded     int
	Failed        int
	ResponseTimes []time.Duration
	ErrorCounts   map[string]int
	CategoryStats map[string]int
}

func (s *SeedStats) record(category string, elapsed time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ResponseTimes = append(s.ResponseTimes, elapsed)
	s.CategoryStats[category]++
	if err != nil {
		s.Failed++
		s.ErrorCounts[err.Error()]++
		return
	}
	s.Succeeded++
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent workers")
	total := flag.Int("n", 200, "Number of transactions to create")
	baseURL := flag.String("url", "http://localhost:8000", "Base URL for the API")
	weeks := flag.Int("weeks", 8, "Spread transaction dates over this many past weeks")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	scenarios := []SeedScenario{
		{"credit", "Salary", 1500, 3000},
		{"credit", "freelance", 100, 800},
		{"credit", "", 5, 50},
		{"debit", "rent", 700, 1200},
		{"debit", "Groceries", 20, 150},
		{"debit", "coffee", 2, 8},
		{"debit", "  FUEL ", 30, 90},
	}

	fmt.Printf("Seeding %d transactions into %s with %d workers\n", *total, *baseURL, *concurrency)

	stats := &SeedStats{
		ResponseTimes: make([]time.Duration, 0, *total),
		ErrorCounts:   make(map[string]int),
		CategoryStats: make(map[string]int),
	}

	client := &http.Client{Timeout: 10 * time.Second}
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < *total; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	start := time.Now()
	for w := 0; w < *concurrency; w++ {
		g.Go(func() error {
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}

				scenario := scenarios[rand.IntN(len(scenarios))]
				tx := Transaction{
					Type:        scenario.Type,
					Amount:      roundCents(scenario.MinAmount + rand.Float64()*(scenario.MaxAmount-scenario.MinAmount)),
					Description: scenario.Description,
					Date:        time.Now().UTC().Add(-time.Duration(rand.Int64N(int64(*weeks) * int64(7*24*time.Hour)))),
				}

				begin := time.Now()
				err := postTransaction(ctx, client, *baseURL, tx)
				stats.record(scenario.Type+"/"+scenario.Description, time.Since(begin), err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Printf("Seeding aborted: %v\n", err)
	}

	printResults(stats, time.Since(start))

	report, err := fetchWeekly(client, *baseURL)
	if err != nil {
		fmt.Printf("Failed to fetch weekly report: %v\n", err)
		return
	}
	printWeekly(report)
}

func roundCents(v float64) float64 {
	return float64(int64(v*100)) / 100
}

func postTransaction(ctx context.Context, client *http.Client, baseURL string, tx Transaction) error {
	body, err := json.Marshal(tx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/transactions/", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return nil
}

func fetchWeekly(client *http.Client, baseURL string) ([]WeeklyEntry, error) {
	resp, err := client.Get(baseURL + "/report/weekly")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}

	var entries []WeeklyEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *SeedStats, elapsed time.Duration) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	times := make([]time.Duration, len(stats.ResponseTimes))
	copy(times, stats.ResponseTimes)
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	var sum time.Duration
	for _, t := range times {
		sum += t
	}
	var avg time.Duration
	if len(times) > 0 {
		avg = sum / time.Duration(len(times))
	}

	fmt.Println("\n================= SEED RESULTS =================")
	fmt.Printf("Created:          %d\n", stats.Succeeded)
	fmt.Printf("Failed:           %d\n", stats.Failed)
	fmt.Printf("Total Time:       %.2f seconds\n", elapsed.Seconds())
	if elapsed > 0 {
		fmt.Printf("Throughput:       %.2f req/s\n", float64(len(times))/elapsed.Seconds())
	}

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average:          %v\n", avg)
	fmt.Printf("P50:              %v\n", percentile(times, 50))
	fmt.Printf("P90:              %v\n", percentile(times, 90))
	fmt.Printf("P99:              %v\n", percentile(times, 99))

	fmt.Println("\n----------------- CATEGORIES -----------------")
	for category, count := range stats.CategoryStats {
		fmt.Printf("%-20s: %d\n", category, count)
	}

	if stats.Failed > 0 {
		fmt.Println("\n----------------- ERRORS -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}

func printWeekly(entries []WeeklyEntry) {
	fmt.Println("\n----------------- WEEKLY REPORT -----------------")
	for _, e := range entries {
		fmt.Printf("%s  credit %10.2f  debit %10.2f  balance %10.2f\n", e.Week, e.Credit, e.Debit, e.Balance)
	}
	fmt.Println("================================================")
}
