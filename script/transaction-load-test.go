package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/bank-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TransactionPayload is the body of POST /transactions
type TransactionPayload struct {
	Amount      string `json:"amount"`
	Description string `json:"description"`
	AccountID   uint64 `json:"accountId"`
}

// AccountPayload is the body of GET /accounts/:id
type AccountPayload struct {
	ID      uint64 `json:"id"`
	Balance string `json:"balance"`
}

// Scenario is a signed amount submitted against a random account
type Scenario struct {
	Name   string
	Amount string
}

// Result contains metrics for a single request
type Result struct {
	Scenario     string
	StatusCode   int
	ResponseTime time.Duration
	Err          error
}

// Stats contains aggregated test statistics
type Stats struct {
	mu            sync.Mutex
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	ScenarioStats map[string]int
	TransportErrs map[string]int
}

func (s *Stats) add(r Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ScenarioStats[r.Scenario]++
	if r.Err != nil {
		s.TransportErrs[r.Err.Error()]++
		return
	}
	s.StatusCounts[r.StatusCode]++
	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
}

func (s *Stats) completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.ResponseTimes)
	for _, count := range s.TransportErrs {
		n += count
	}
	return n
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 200, "Total number of requests to make")
	accountIDsStr := flag.String("a", "1", "Comma-separated list of account IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	token := flag.String("token", "", "Bearer token sent with every request")
	delayMs := flag.Int("delay", 0, "Delay between requests of one worker in milliseconds")
	amountsStr := flag.String("amounts", "10.00,50.00,-15.00,-40.00,-75.50", "Comma-separated signed amounts to submit")
	flag.Parse()

	var accountIDs []uint64
	for _, idStr := range strings.Split(*accountIDsStr, ",") {
		var id uint64
		if _, err := fmt.Sscanf(strings.TrimSpace(idStr), "%d", &id); err == nil && id > 0 {
			accountIDs = append(accountIDs, id)
		}
	}
	if len(accountIDs) == 0 {
		fmt.Println("no valid account IDs given")
		os.Exit(2)
	}

	var scenarios []Scenario
	for _, raw := range strings.Split(*amountsStr, ",") {
		amount, err := entity.ParseAmount(raw)
		if err != nil || amount.IsZero() {
			fmt.Printf("skipping amount %q\n", raw)
			continue
		}
		name := "Credit " + entity.FormatAmount(amount)
		if amount.IsNegative() {
			name = "Debit " + entity.FormatAmount(amount.Abs())
		}
		scenarios = append(scenarios, Scenario{Name: name, Amount: entity.FormatAmount(amount)})
	}
	if len(scenarios) == 0 {
		fmt.Println("no valid amounts given")
		os.Exit(2)
	}

	fmt.Printf("Load testing POST /transactions across %d accounts: %v\n", len(accountIDs), accountIDs)
	fmt.Printf("Concurrency: %d goroutines, total requests: %d, delay: %d ms\n", *concurrency, *totalRequests, *delayMs)

	stats := &Stats{
		StatusCounts:  make(map[int]int),
		ScenarioStats: make(map[string]int),
		TransportErrs: make(map[string]int),
	}
	client := &http.Client{Timeout: 10 * time.Second}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				scenario := scenarios[rand.IntN(len(scenarios))]
				accountID := accountIDs[rand.IntN(len(accountIDs))]
				stats.add(submit(client, *baseURL, *token, accountID, scenario))
			}
		}()
	}

	startTime := time.Now()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			fmt.Printf("Progress: %d/%d requests completed\n", stats.completed(), *totalRequests)
		}
	}()

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	printResults(stats, *totalRequests, time.Since(startTime))

	if !checkBalances(client, *baseURL, *token, accountIDs) {
		os.Exit(1)
	}
}

func submit(client *http.Client, baseURL, token string, accountID uint64, scenario Scenario) Result {
	result := Result{Scenario: scenario.Name}

	body, err := json.Marshal(TransactionPayload{
		Amount:      scenario.Amount,
		Description: "load test: " + scenario.Name,
		AccountID:   accountID,
	})
	if err != nil {
		result.Err = err
		return result
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/transactions", bytes.NewReader(body))
	if err != nil {
		result.Err = err
		return result
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		result.Err = err
		return result
	}
	_ = resp.Body.Close()

	result.StatusCode = resp.StatusCode
	return result
}

// checkBalances reports every account whose balance went negative
func checkBalances(client *http.Client, baseURL, token string, accountIDs []uint64) bool {
	fmt.Println("\n----------------- BALANCES -----------------")
	ok := true
	for _, id := range accountIDs {
		req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/accounts/%d", baseURL, id), nil)
		if err != nil {
			fmt.Printf("Account %d: %v\n", id, err)
			ok = false
			continue
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := client.Do(req)
		if err != nil {
			fmt.Printf("Account %d: %v\n", id, err)
			ok = false
			continue
		}

		var account AccountPayload
		err = json.NewDecoder(resp.Body).Decode(&account)
		_ = resp.Body.Close()
		if err != nil {
			fmt.Printf("Account %d: could not decode response: %v\n", id, err)
			ok = false
			continue
		}

		balance, err := decimal.NewFromString(account.Balance)
		if err != nil {
			fmt.Printf("Account %d: invalid balance %q\n", id, account.Balance)
			ok = false
			continue
		}

		status := "ok"
		if balance.IsNegative() {
			status = "NEGATIVE"
			ok = false
		}
		fmt.Printf("Account %d: %s (%s)\n", id, account.Balance, status)
	}
	return ok
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *Stats, total int, elapsed time.Duration) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	var sum time.Duration
	for _, d := range sorted {
		sum += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = sum / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", total)
	fmt.Printf("Total Test Time:     %.2f seconds\n", elapsed.Seconds())
	fmt.Printf("Throughput:          %.2f requests/second\n", float64(len(sorted))/elapsed.Seconds())

	fmt.Println("\n----------------- STATUS CODES -----------------")
	codes := make([]int, 0, len(stats.StatusCounts))
	for code := range stats.StatusCounts {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	for _, code := range codes {
		label := http.StatusText(code)
		if code == http.StatusBadRequest {
			label += " (includes insufficient funds)"
		}
		fmt.Printf("%d %-40s: %d\n", code, label, stats.StatusCounts[code])
	}

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	if len(sorted) > 0 {
		fmt.Printf("Average: %v, Min: %v, Max: %v\n", avg, sorted[0], sorted[len(sorted)-1])
	}
	fmt.Printf("P50: %v, P90: %v, P95: %v, P99: %v\n",
		percentile(sorted, 50), percentile(sorted, 90), percentile(sorted, 95), percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", name, count)
	}

	if len(stats.TransportErrs) > 0 {
		fmt.Println("\n----------------- TRANSPORT ERRORS -----------------")
		for msg, count := range stats.TransportErrs {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
