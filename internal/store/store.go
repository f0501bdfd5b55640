package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/heinicus/mobile-mechanic-api/internal/models"
)

// SnapshotStore persists the serialized engine state. Save is called
// fire-and-forget after every mutation; failures must never reach callers.
type SnapshotStore interface {
	Save(ctx context.Context, data []byte) error
	Load(ctx context.Context) ([]byte, error)
}

// EventSink receives an {event, data, timestamp} record for every mutating
// action. Observability only; a nil sink disables emission.
type EventSink interface {
	Event(event string, data map[string]interface{})
}

// Store is the job lifecycle engine: a single-writer state container owning
// every dispatch collection. All mutation goes through its methods; a mutex
// serializes writers so the last action wins with full history retained.
type Store struct {
	mu sync.Mutex

	contact               *models.Contact
	vehicles              []models.Vehicle
	serviceRequests       []models.ServiceRequest
	quotes                []models.Quote
	maintenanceReminders  []models.MaintenanceReminder
	maintenanceHistory    []models.MaintenanceRecord
	jobLogs               []models.JobLog
	jobParts              map[string][]models.JobPart
	mechanicVerifications []models.MechanicVerification

	snapshots SnapshotStore
	events    EventSink
	logger    *zap.Logger
	now       func() time.Time

	snapshotCh chan []byte
	writerQuit chan struct{}
	writerDone chan struct{}
	closeOnce  sync.Once
}

// Option configures a Store.
type Option func(*Store)

// WithSnapshotStore injects the persistence port.
func WithSnapshotStore(s SnapshotStore) Option {
	return func(st *Store) { st.snapshots = s }
}

// WithEventSink injects the analytics sink.
func WithEventSink(sink EventSink) Option {
	return func(st *Store) { st.events = sink }
}

// WithLogger injects the logger.
func WithLogger(l *zap.Logger) Option {
	return func(st *Store) { st.logger = l }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(st *Store) { st.now = now }
}

// New constructs an empty engine.
func New(opts ...Option) *Store {
	s := &Store{
		jobParts: make(map[string][]models.JobPart),
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.snapshots != nil {
		s.startSnapshotWriter()
	}
	return s
}

// startSnapshotWriter launches the single goroutine that owns every Save
// call. A one-slot mailbox coalesces bursts: a snapshot still waiting to be
// written is replaced by the next one, so writes always land newest-last.
func (s *Store) startSnapshotWriter() {
	s.snapshotCh = make(chan []byte, 1)
	s.writerQuit = make(chan struct{})
	s.writerDone = make(chan struct{})
	go func() {
		defer close(s.writerDone)
		for {
			select {
			case data := <-s.snapshotCh:
				s.save(data)
			case <-s.writerQuit:
				select {
				case data := <-s.snapshotCh:
					s.save(data)
				default:
				}
				return
			}
		}
	}()
}

func (s *Store) save(data []byte) {
	if err := s.snapshots.Save(context.Background(), data); err != nil {
		s.logger.Warn("snapshot write failed", zap.Error(err))
	}
}

// Close flushes any pending snapshot and stops the writer. Safe to call
// more than once.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		if s.writerQuit == nil {
			return
		}
		close(s.writerQuit)
		<-s.writerDone
	})
}

// Hydrate loads the persisted snapshot, if any, replacing current state.
// A missing snapshot is not an error; a corrupt one is.
func (s *Store) Hydrate(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	data, err := s.snapshots.Load(ctx)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contact = snap.Contact
	s.vehicles = snap.Vehicles
	s.serviceRequests = snap.ServiceRequests
	s.quotes = snap.Quotes
	s.maintenanceReminders = snap.MaintenanceReminders
	s.maintenanceHistory = snap.MaintenanceHistory
	s.jobLogs = snap.JobLogs
	s.jobParts = snap.JobParts
	if s.jobParts == nil {
		s.jobParts = make(map[string][]models.JobPart)
	}
	s.mechanicVerifications = snap.MechanicVerifications
	return nil
}

// persistLocked serializes the state under the held lock and hands the bytes
// to the snapshot writer. Callers never observe write failures; they are
// logged by the writer. A snapshot still queued when the next mutation lands
// is dropped in favor of the newer one.
func (s *Store) persistLocked() {
	if s.snapshots == nil {
		return
	}
	data, err := json.Marshal(s.snapshotLocked())
	if err != nil {
		s.logger.Error("snapshot marshal failed", zap.Error(err))
		return
	}
	for {
		select {
		case s.snapshotCh <- data:
			return
		default:
		}
		select {
		case <-s.snapshotCh:
		default:
		}
	}
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Contact:               s.contact,
		Vehicles:              s.vehicles,
		ServiceRequests:       s.serviceRequests,
		Quotes:                s.quotes,
		MaintenanceReminders:  s.maintenanceReminders,
		MaintenanceHistory:    s.maintenanceHistory,
		JobLogs:               s.jobLogs,
		JobParts:              s.jobParts,
		MechanicVerifications: s.mechanicVerifications,
	}
}

// Snapshot returns a serializable view of the full engine state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) emit(event string, data map[string]interface{}) {
	if s.events == nil {
		return
	}
	s.events.Event(event, data)
}
