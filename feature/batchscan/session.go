package batchscan

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"mosb-portal/feature/history"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrSessionNotFound is returned for an unknown session id.
	ErrSessionNotFound = errors.New("batch session not found")
	// ErrSessionStopped is returned when submitting to a stopped session;
	// that is a caller contract violation, not a scan rejection.
	ErrSessionStopped = errors.New("batch session already stopped")
	// ErrSessionActive is returned when an operation requires a finished
	// session (e.g. export) but the session is still running.
	ErrSessionActive = errors.New("batch session still active")
	// ErrCapacityReached is returned by Submit when the session hit its
	// accepted-code ceiling and auto-stopped. The final result is
	// available via Stop, which stays idempotent.
	ErrCapacityReached = errors.New("batch capacity reached")
	// ErrAutoRunning is returned when auto-scan is started twice.
	ErrAutoRunning = errors.New("auto scan already running")
)

// RejectedItem is one refused submission within a session.
type RejectedItem struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// Result is the summary of a finished batch session.
type Result struct {
	SessionID    string         `json:"sessionId"`
	ScannedItems []string       `json:"scannedItems"`
	ErrorItems   []RejectedItem `json:"errorItems"`
	SuccessCount int            `json:"successCount"`
	ErrorCount   int            `json:"errorCount"`
	TotalTimeMs  int64          `json:"totalTimeMs"`
	StartedAt    time.Time      `json:"startedAt"`
	EndedAt      time.Time      `json:"endedAt"`
}

// Session is one active batch scan run.
type Session struct {
	mu          sync.Mutex
	id          string
	capacity    int
	accepted    []string // insertion order
	acceptedSet map[string]struct{}
	rejected    []RejectedItem
	startedAt   time.Time
	stopped     bool
	result      *Result
	stopCh      chan struct{} // closed on stop; cancels the auto-scan loop
	autoRunning bool
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Info is a point-in-time snapshot of a session.
type Info struct {
	SessionID string    `json:"sessionId"`
	Capacity  int       `json:"capacity"`
	Accepted  int       `json:"accepted"`
	Rejected  int       `json:"rejected"`
	Stopped   bool      `json:"stopped"`
	StartedAt time.Time `json:"startedAt"`
}

// Info returns a snapshot of the session's current state.
func (s *Session) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Info{
		SessionID: s.id,
		Capacity:  s.capacity,
		Accepted:  len(s.accepted),
		Rejected:  len(s.rejected),
		Stopped:   s.stopped,
		StartedAt: s.startedAt,
	}
}

// Controller owns all batch sessions and drives submissions through the
// validator, the history log, and session bookkeeping.
type Controller struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	hist         *history.Store
	logger       *zap.Logger
	capacity     int
	autoInterval time.Duration
}

// NewController creates a batch controller. When hist is nil a batch-local
// in-memory history log (capacity 50) is used instead of a shared one.
func NewController(hist *history.Store, cfg Config, logger *zap.Logger) *Controller {
	if hist == nil {
		// Medium errors are impossible for the in-memory medium.
		hist, _ = history.NewStore(history.NewMemoryMedium(), history.BatchLocalMaxSize)
	}

	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	intervalMs := cfg.AutoIntervalMs
	if intervalMs <= 0 {
		intervalMs = DefaultAutoIntervalMs
	}

	return &Controller{
		sessions:     make(map[string]*Session),
		hist:         hist,
		logger:       logger,
		capacity:     capacity,
		autoInterval: time.Duration(intervalMs) * time.Millisecond,
	}
}

// Start creates a fresh session. capacity <= 0 uses the configured default.
func (c *Controller) Start(capacity int) *Session {
	if capacity <= 0 {
		capacity = c.capacity
	}

	s := &Session{
		id:          uuid.NewString(),
		capacity:    capacity,
		acceptedSet: make(map[string]struct{}),
		startedAt:   time.Now(),
		stopCh:      make(chan struct{}),
	}

	c.mu.Lock()
	c.sessions[s.id] = s
	c.mu.Unlock()

	c.logger.Info("Batch session started",
		zap.String("session_id", s.id),
		zap.Int("capacity", capacity),
	)
	return s
}

// Get returns the session with the given id.
func (c *Controller) Get(id string) (*Session, error) {
	c.mu.RLock()
	s, ok := c.sessions[id]
	c.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Submit validates one scanned code against the session and records the
// outcome in both the session and the history log.
//
// Invalid input is a normal, reportable outcome (Accepted=false), never an
// error. The error cases are contract violations: an unknown or stopped
// session, or a session at capacity, which auto-stops and reports
// ErrCapacityReached.
func (c *Controller) Submit(id, raw string, source Source) (Outcome, error) {
	s, err := c.Get(id)
	if err != nil {
		return Outcome{}, err
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return Outcome{}, ErrSessionStopped
	}
	if len(s.accepted) >= s.capacity {
		// Hard ceiling: refuse further input and finalize the run.
		c.stopLocked(s)
		s.mu.Unlock()
		return Outcome{}, ErrCapacityReached
	}

	outcome := Validate(raw, s.acceptedSet)
	if outcome.Accepted {
		s.accepted = append(s.accepted, outcome.Code)
		s.acceptedSet[outcome.Code] = struct{}{}
	} else {
		s.rejected = append(s.rejected, RejectedItem{Code: outcome.Code, Reason: outcome.Reason})
	}
	s.mu.Unlock()

	c.record(s.id, outcome, source)
	return outcome, nil
}

// record appends the scan outcome to the history log. History medium
// failures do not fail the scan; the outcome already happened.
func (c *Controller) record(sessionID string, outcome Outcome, source Source) {
	status := history.StatusSuccess
	metadata := map[string]any{
		"batchScan": true,
		"sessionId": sessionID,
		"source":    string(source),
	}
	if !outcome.Accepted {
		status = history.StatusError
		metadata["reason"] = outcome.Reason
	}

	_, err := c.hist.Append(history.Entry{
		Code:      outcome.Code,
		Status:    status,
		Timestamp: outcome.Timestamp,
		Metadata:  metadata,
	})
	if err != nil {
		c.logger.Warn("Failed to record scan in history",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}
}

// Stop finalizes the session and returns its result. Repeated calls return
// the same result without double-counting; the auto-scan loop, if any, is
// cancelled unconditionally.
func (c *Controller) Stop(id string) (*Result, error) {
	s, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		c.stopLocked(s)
	}
	return s.result, nil
}

// Result returns the result of a finished session, or ErrSessionActive if
// the session has not been stopped yet.
func (c *Controller) Result(id string) (*Result, error) {
	s, err := c.Get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.stopped {
		return nil, ErrSessionActive
	}
	return s.result, nil
}

// stopLocked finalizes a session. Caller holds s.mu.
func (c *Controller) stopLocked(s *Session) {
	endedAt := time.Now()

	scanned := make([]string, len(s.accepted))
	copy(scanned, s.accepted)
	errorItems := make([]RejectedItem, len(s.rejected))
	copy(errorItems, s.rejected)

	s.stopped = true
	s.result = &Result{
		SessionID:    s.id,
		ScannedItems: scanned,
		ErrorItems:   errorItems,
		SuccessCount: len(scanned),
		ErrorCount:   len(errorItems),
		TotalTimeMs:  endedAt.Sub(s.startedAt).Milliseconds(),
		StartedAt:    s.startedAt,
		EndedAt:      endedAt,
	}
	close(s.stopCh)

	c.logger.Info("Batch session stopped",
		zap.String("session_id", s.id),
		zap.Int("success_count", len(scanned)),
		zap.Int("error_count", len(errorItems)),
	)
}

// StartAuto begins the auto-scan loop for a session: a cooperative ticker
// that submits one code from next per interval until the session stops.
// It is a simulation aid for continuous scanning, not a scanning technology.
func (c *Controller) StartAuto(id string, next func() string) error {
	s, err := c.Get(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return ErrSessionStopped
	}
	if s.autoRunning {
		s.mu.Unlock()
		return ErrAutoRunning
	}
	s.autoRunning = true
	s.mu.Unlock()

	if next == nil {
		next = SyntheticCode
	}

	go func() {
		ticker := time.NewTicker(c.autoInterval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stopCh:
				return
			case <-ticker.C:
				_, err := c.Submit(s.id, next(), SourceAuto)
				if err != nil {
					// Stopped or at capacity; either way the loop is done.
					return
				}
			}
		}
	}()

	return nil
}

// SyntheticCode produces a random well-formed LPO number for auto-scan runs.
func SyntheticCode() string {
	return fmt.Sprintf("LPO-%d-%06d", time.Now().Year(), rand.Intn(1000000))
}
