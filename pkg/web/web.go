// Package web provides a web server and API for RFC2544 Test Master
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status is the running test's lifecycle state, reported through
// UpdateStatus and surfaced at /api/status.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusRunning  Status = "running"
	StatusComplete Status = "complete"
	StatusError    Status = "error"
)

// Stats for API responses
type Stats struct {
	TestType    string  `json:"test_type"`
	FrameSize   uint32  `json:"frame_size"`
	State       string  `json:"state"`
	Progress    float64 `json:"progress"`
	Iteration   int     `json:"iteration"`
	MaxIter     int     `json:"max_iter"`
	TxPackets   uint64  `json:"tx_packets"`
	TxBytes     uint64  `json:"tx_bytes"`
	RxPackets   uint64  `json:"rx_packets"`
	RxBytes     uint64  `json:"rx_bytes"`
	TxRate      float64 `json:"tx_rate_mbps"`
	RxRate      float64 `json:"rx_rate_mbps"`
	TxPPS       float64 `json:"tx_pps"`
	RxPPS       float64 `json:"rx_pps"`
	OfferedRate float64 `json:"offered_rate_pct"`
	LossPct     float64 `json:"loss_pct"`
	LatencyMin  float64 `json:"latency_min_ns"`
	LatencyMax  float64 `json:"latency_max_ns"`
	LatencyAvg  float64 `json:"latency_avg_ns"`
	LatencyP99  float64 `json:"latency_p99_ns"`
	Uptime      float64 `json:"uptime_sec"`
	Timestamp   int64   `json:"timestamp"`
}

// StatusReport is the current lifecycle status, polled by the UI while a
// test runs in the background.
type StatusReport struct {
	Status    Status  `json:"status"`
	Message   string  `json:"message"`
	Progress  float64 `json:"progress"`
	Timestamp int64   `json:"timestamp"`
}

// TestResult is one completed test's data, shaped loosely (a map) since
// each test type's result carries different fields.
type TestResult struct {
	TestType  string                 `json:"test_type"`
	FrameSize uint32                 `json:"frame_size"`
	Data      map[string]interface{} `json:"data"`
	Timestamp int64                  `json:"timestamp"`
}

// Config for test execution, posted to /api/start. TestType is
// dataplane.TestType's underlying int so the caller can convert it
// directly without a string lookup table.
type Config struct {
	Interface      string  `json:"interface"`
	TestType       int     `json:"test_type"`
	FrameSize      uint32  `json:"frame_size"`
	IncludeJumbo   bool    `json:"include_jumbo"`
	LineRateMbps   uint64  `json:"line_rate_mbps"`
	TrialDuration  time.Duration `json:"trial_duration_ns"`
	InitialRatePct float64 `json:"initial_rate_pct"`
	ResolutionPct  float64 `json:"resolution_pct"`
	HWTimestamp    bool    `json:"hw_timestamp"`
}

// Server represents the web server
type Server struct {
	addr    string
	mux     *http.ServeMux
	server  *http.Server
	mu      sync.RWMutex
	stats   Stats
	status  StatusReport
	results []TestResult
	config  Config

	// Embedded UI (optional)
	uiFS fs.FS

	// metricsHandler overrides the default registry's handler at /metrics
	// when set via WithMetricsRegisterer.
	metricsHandler http.Handler

	// Callbacks
	OnStart  func(cfg Config) error
	OnStop   func() error
	OnCancel func()
}

// Option for server configuration
type Option func(*Server)

// WithUI sets the embedded UI filesystem
func WithUI(uiFS embed.FS, subdir string) Option {
	return func(s *Server) {
		sub, err := fs.Sub(uiFS, subdir)
		if err == nil {
			s.uiFS = sub
		}
	}
}

// WithMetricsRegisterer mounts reg's Prometheus metrics at /metrics instead
// of the default registry.
func WithMetricsRegisterer(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}
}

// New creates a new web server
func New(addr string, opts ...Option) *Server {
	s := &Server{
		addr:    addr,
		mux:     http.NewServeMux(),
		results: make([]TestResult, 0),
		status:  StatusReport{Status: StatusIdle},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// API routes
	s.mux.HandleFunc("/api/stats", s.handleStats)
	s.mux.HandleFunc("/api/status", s.handleStatus)
	s.mux.HandleFunc("/api/results", s.handleResults)
	s.mux.HandleFunc("/api/config", s.handleConfig)
	s.mux.HandleFunc("/api/start", s.handleStart)
	s.mux.HandleFunc("/api/stop", s.handleStop)
	s.mux.HandleFunc("/api/cancel", s.handleCancel)
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.metricsHandler != nil {
		s.mux.Handle("/metrics", s.metricsHandler)
	} else {
		s.mux.Handle("/metrics", promhttp.Handler())
	}

	// Static UI (if embedded)
	if s.uiFS != nil {
		s.mux.Handle("/", http.FileServer(http.FS(s.uiFS)))
	} else {
		s.mux.HandleFunc("/", s.handleRoot)
	}
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
    <title>RFC2544 Test Master</title>
    <style>
        body { font-family: system-ui, sans-serif; background: #1a1a2e; color: #eee; margin: 40px; }
        h1 { color: #0f0; }
        .card { background: #16213e; padding: 20px; border-radius: 8px; margin: 10px 0; }
        pre { background: #0f0f23; padding: 10px; border-radius: 4px; overflow-x: auto; }
        a { color: #4da6ff; }
    </style>
</head>
<body>
    <h1>RFC2544 Test Master</h1>
    <div class="card">
        <h2>API Endpoints</h2>
        <ul>
            <li><a href="/api/stats">GET /api/stats</a> - Current statistics</li>
            <li><a href="/api/status">GET /api/status</a> - Test lifecycle status</li>
            <li><a href="/api/results">GET /api/results</a> - Test results</li>
            <li><a href="/api/config">GET /api/config</a> - Current configuration</li>
            <li>POST /api/start - Start test</li>
            <li>POST /api/stop - Stop test</li>
            <li>POST /api/cancel - Cancel test</li>
            <li><a href="/api/health">GET /api/health</a> - Health check</li>
            <li><a href="/metrics">GET /metrics</a> - Prometheus metrics</li>
        </ul>
    </div>
    <div class="card">
        <h2>Start Test</h2>
        <pre>curl -X POST http://localhost%s/api/start \
  -H "Content-Type: application/json" \
  -d '{"interface":"eth0","test_type":0,"frame_size":1518}'</pre>
    </div>
</body>
</html>`, s.addr)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
		"version":   "2.0.0",
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	stats := s.stats
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	status := s.status
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.RLock()
	results := make([]TestResult, len(s.results))
	copy(results, s.results)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	config := s.config
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(config)
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var cfg Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, fmt.Sprintf("Invalid config: %v", err), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.config = cfg
	s.results = s.results[:0] // Clear previous results
	s.status = StatusReport{Status: StatusRunning, Timestamp: time.Now().Unix()}
	s.mu.Unlock()

	if s.OnStart != nil {
		if err := s.OnStart(cfg); err != nil {
			s.mu.Lock()
			s.status = StatusReport{Status: StatusError, Message: err.Error(), Timestamp: time.Now().Unix()}
			s.mu.Unlock()
			http.Error(w, fmt.Sprintf("Start failed: %v", err), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "started"})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.OnStop != nil {
		if err := s.OnStop(); err != nil {
			http.Error(w, fmt.Sprintf("Stop failed: %v", err), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "stopped"})
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.OnCancel != nil {
		s.OnCancel()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "cancelled"})
}

// UpdateStats updates the current statistics
func (s *Server) UpdateStats(stats Stats) {
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
}

// UpdateStatus reports the test run's lifecycle status and progress
// percentage, polled by the UI at /api/status.
func (s *Server) UpdateStatus(status Status, message string, progressPct float64) {
	s.mu.Lock()
	s.status = StatusReport{
		Status:    status,
		Message:   message,
		Progress:  progressPct,
		Timestamp: time.Now().Unix(),
	}
	s.mu.Unlock()
}

// AddResult adds a test result
func (s *Server) AddResult(result TestResult) {
	result.Timestamp = time.Now().Unix()
	s.mu.Lock()
	s.results = append(s.results, result)
	s.mu.Unlock()
}

// ClearResults clears all results
func (s *Server) ClearResults() {
	s.mu.Lock()
	s.results = s.results[:0]
	s.mu.Unlock()
}

// Start begins serving HTTP requests
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("[web] Starting server on %s", s.addr)
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}
