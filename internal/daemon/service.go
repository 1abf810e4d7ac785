// Package daemon runs a local HTTP/SSE service exposing the current
// month's budget picture for status bars and widgets.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/jmoreaux/budgetpilot/internal/budget"
	"github.com/jmoreaux/budgetpilot/internal/store"
)

// Config controls the daemon service.
type Config struct {
	DBPath       string
	UserID       string
	Addr         string
	Interval     time.Duration
	EventsBuffer int
}

// Snapshot is the published view of the current month.
type Snapshot struct {
	Month                int     `json:"month"`
	Year                 int     `json:"year"`
	Items                int     `json:"items"`
	FreeMoney            float64 `json:"free_money"`
	TotalToSave          float64 `json:"total_to_save"`
	CommonBalance        float64 `json:"common_balance"`
	YearEndSavings       float64 `json:"year_end_savings"`
	YearEndSharedSavings float64 `json:"year_end_shared_savings"`
	Status               string  `json:"status"`
	Onboarded            bool    `json:"onboarded"`
}

// Delta is the change between two polls.
type Delta struct {
	Items          int     `json:"items"`
	FreeMoney      float64 `json:"free_money"`
	TotalToSave    float64 `json:"total_to_save"`
	CommonBalance  float64 `json:"common_balance"`
	YearEndSavings float64 `json:"year_end_savings"`
}

func (d Delta) isZero() bool {
	const eps = 1e-9
	return d.Items == 0 &&
		math.Abs(d.FreeMoney) < eps &&
		math.Abs(d.TotalToSave) < eps &&
		math.Abs(d.CommonBalance) < eps &&
		math.Abs(d.YearEndSavings) < eps
}

// Event is one published change.
type Event struct {
	ID       int64     `json:"id"`
	Time     time.Time `json:"time"`
	Snapshot Snapshot  `json:"snapshot"`
	Delta    Delta     `json:"delta"`
}

// Status is the /v1/status payload.
type Status struct {
	StartedAt  time.Time `json:"started_at"`
	LastPollAt time.Time `json:"last_poll_at"`
	PollCount  int64     `json:"poll_count"`
	LastError  string    `json:"last_error,omitempty"`
	Snapshot   Snapshot  `json:"snapshot"`
}

// Service polls the store and serves snapshots over HTTP and SSE.
type Service struct {
	cfg Config

	mu          sync.RWMutex
	snapshot    Snapshot
	ready       bool
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	events      []Event
	nextEventID int64
	subs        map[chan Event]struct{}
}

// New creates a service from config, applying defaults.
func New(cfg Config) *Service {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.EventsBuffer <= 0 {
		cfg.EventsBuffer = 200
	}
	return &Service{
		cfg:         cfg,
		nextEventID: 1,
		subs:        make(map[chan Event]struct{}),
	}
}

// Run polls and serves until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	st, err := store.Open(s.cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	s.mu.Lock()
	s.startedAt = time.Now()
	s.mu.Unlock()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.pollOnce(st)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
			return ctx.Err()
		case err := <-errCh:
			return fmt.Errorf("http server: %w", err)
		case <-ticker.C:
			s.pollOnce(st)
		}
	}
}

func (s *Service) pollOnce(st *store.Store) {
	snap, err := s.buildSnapshot(st)

	s.mu.Lock()
	s.lastPollAt = time.Now()
	s.pollCount++
	if err != nil {
		s.lastError = err.Error()
		s.mu.Unlock()
		log.Printf("poll failed: %v", err)
		return
	}
	s.lastError = ""
	prev := s.snapshot
	wasReady := s.ready
	s.snapshot = snap
	s.ready = true
	s.mu.Unlock()

	delta := diffSnapshots(prev, snap)
	if wasReady && delta.isZero() {
		return
	}
	s.publishEvent(Event{
		Time:     time.Now(),
		Snapshot: snap,
		Delta:    delta,
	})
}

func (s *Service) buildSnapshot(st *store.Store) (Snapshot, error) {
	now := time.Now()
	snap := Snapshot{Month: int(now.Month()), Year: now.Year()}

	profile, err := st.GetProfile(s.cfg.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return snap, nil // pre-onboarding: empty snapshot, not an error
	}
	if err != nil {
		return Snapshot{}, err
	}

	plan, err := st.GetActivePlan(profile.ID)
	if errors.Is(err, store.ErrNotFound) {
		return snap, nil
	}
	if err != nil {
		return Snapshot{}, err
	}

	items, err := st.ListItems(plan.ID)
	if err != nil {
		return Snapshot{}, err
	}
	stocks, err := st.GetStocks(plan.ID)
	if err != nil {
		return Snapshot{}, err
	}

	mb := budget.Aggregate(profile, plan, items, stocks, snap.Month)
	return Snapshot{
		Month:                mb.Month,
		Year:                 mb.Year,
		Items:                len(items),
		FreeMoney:            mb.FreeMoney,
		TotalToSave:          mb.TotalToSave,
		CommonBalance:        mb.CommonBalance,
		YearEndSavings:       mb.YearEndSavings,
		YearEndSharedSavings: mb.YearEndSharedSavings,
		Status:               string(mb.Status),
		Onboarded:            true,
	}, nil
}

func diffSnapshots(prev, curr Snapshot) Delta {
	return Delta{
		Items:          curr.Items - prev.Items,
		FreeMoney:      curr.FreeMoney - prev.FreeMoney,
		TotalToSave:    curr.TotalToSave - prev.TotalToSave,
		CommonBalance:  curr.CommonBalance - prev.CommonBalance,
		YearEndSavings: curr.YearEndSavings - prev.YearEndSavings,
	}
}

func (s *Service) publishEvent(e Event) {
	s.mu.Lock()
	e.ID = s.nextEventID
	s.nextEventID++

	s.events = append(s.events, e)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for ch := range s.subs {
		select {
		case ch <- e:
		default: // slow subscriber drops events rather than blocking the poller
		}
	}
	s.mu.Unlock()
}

func (s *Service) subscribe() chan Event {
	ch := make(chan Event, 16)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	return ch
}

func (s *Service) unsubscribe(ch chan Event) {
	s.mu.Lock()
	delete(s.subs, ch)
	s.mu.Unlock()
}

func (s *Service) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	st := Status{
		StartedAt:  s.startedAt,
		LastPollAt: s.lastPollAt,
		PollCount:  s.pollCount,
		LastError:  s.lastError,
		Snapshot:   s.snapshot,
	}
	s.mu.RUnlock()

	writeJSON(w, st)
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	writeJSON(w, events)
}

// handleStream serves Server-Sent Events: buffered events first, then
// live ones until the client disconnects.
func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := s.subscribe()
	defer s.unsubscribe(ch)

	s.mu.RLock()
	backlog := make([]Event, len(s.events))
	copy(backlog, s.events)
	s.mu.RUnlock()

	for _, e := range backlog {
		if err := writeSSE(w, e); err != nil {
			return
		}
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case e := <-ch:
			if err := writeSSE(w, e); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "id: %d\ndata: %s\n\n", e.ID, data)
	return err
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
