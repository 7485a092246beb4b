package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"eventCatalog/internal/catalog/local"
	"eventCatalog/internal/lib/logger/sl"
	"eventCatalog/internal/models"

	"github.com/go-playground/validator/v10"
)

// Remote is the adapter surface against the authoritative backend. Every
// call is asynchronous and may fail; the store never falls back to local
// mode when one does.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Remote
type Remote interface {
	ListAllEvents(ctx context.Context) ([]models.Event, error)
	ListMyEvents(ctx context.Context) ([]models.Event, error)
	ListMyRegistrations(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, draft models.EventDraft) (models.Event, error)
	UpdateEvent(ctx context.Context, id string, patch models.EventPatch) (models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	RegisterForEvent(ctx context.Context, eventID string) error
	DashboardStats(ctx context.Context) (models.DashboardStats, error)
}

// Session is the credential holder owned by the auth layer. A present
// credential routes commands remotely; its absence keeps them local.
type Session interface {
	Active() bool
	UserID() string
}

// Store owns the canonical in-memory events and registrations collections
// and mediates every read and write between the optimistic local engine and
// the reload-based remote adapter. It is the single source of truth for
// consumers; neither engine nor adapter retains a reference into its
// collections across calls.
type Store struct {
	log      *slog.Logger
	validate *validator.Validate
	session  Session
	remote   Remote
	engine   *local.Engine

	mu   sync.Mutex
	cols local.Collections

	inflight   atomic.Int64
	reloadSeq  atomic.Uint64
	appliedSeq uint64 // guarded by mu
}

type Option func(*Store)

// WithSeed pre-populates the events collection, so the catalog is
// browsable in local mode before any remote data has loaded.
func WithSeed(events []models.Event) Option {
	return func(s *Store) {
		s.cols.Events = append(s.cols.Events, events...)
	}
}

// WithEngine swaps the mutation engine. Used in tests to pin the clock and
// id source.
func WithEngine(engine *local.Engine) Option {
	return func(s *Store) {
		s.engine = engine
	}
}

func New(log *slog.Logger, session Session, remote Remote, opts ...Option) *Store {
	s := &Store{
		log:      log,
		validate: validator.New(),
		session:  session,
		remote:   remote,
		engine:   local.NewEngine(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddEvent creates an event through whichever mode is active. The returned
// event carries the assigned id.
func (s *Store) AddEvent(ctx context.Context, draft models.EventDraft) (models.Event, error) {
	const op = "catalog.AddEvent"

	if err := s.validate.Struct(draft); err != nil {
		return models.Event{}, fmt.Errorf("%s: %w: %v", op, ErrValidation, err)
	}

	ev, err := s.mutator().create(ctx, draft)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return ev, nil
}

// UpdateEvent merges the patch into the event. A missing id is a silent
// no-op in local mode; the remote decides for itself in remote mode.
func (s *Store) UpdateEvent(ctx context.Context, id string, patch models.EventPatch) error {
	const op = "catalog.UpdateEvent"

	if err := s.validate.Struct(patch); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrValidation, err)
	}

	if err := s.mutator().update(ctx, id, patch); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteEvent removes the event and soft-cancels its registrations.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	const op = "catalog.DeleteEvent"

	if err := s.mutator().delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RegisterForEvent claims a spot. A false result means the registration was
// refused (event full, duplicate, or unknown) rather than failed. Errors are
// reserved for transport and unexpected remote failures.
func (s *Store) RegisterForEvent(ctx context.Context, eventID, userID string) (bool, error) {
	const op = "catalog.RegisterForEvent"

	ok, err := s.mutator().register(ctx, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

// CancelRegistration releases the user's active registration. The backend
// exposes no cancellation endpoint, so this always applies to the store's
// current collections, whichever mode populated them. Idempotent.
func (s *Store) CancelRegistration(eventID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Cancel(&s.cols, eventID, userID)
}

func (s *Store) GetEventByID(id string) (models.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cols.EventByID(id)
}

func (s *Store) GetEventsByOrganizer(organizerID string) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cols.EventsByOrganizer(organizerID)
}

// GetUserRegistrations returns the user's active registrations.
func (s *Store) GetUserRegistrations(userID string) []models.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cols.RegistrationsByUser(userID)
}

func (s *Store) IsUserRegistered(eventID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cols.IsRegistered(eventID, userID)
}

// Events returns a snapshot of the events collection.
func (s *Store) Events() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]models.Event, len(s.cols.Events))
	copy(events, s.cols.Events)

	return events
}

// Registrations returns a snapshot of the registrations collection,
// cancelled ones included.
func (s *Store) Registrations() []models.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()

	regs := make([]models.Registration, len(s.cols.Registrations))
	copy(regs, s.cols.Registrations)

	return regs
}

// IsLoading reports whether any reload is in flight.
func (s *Store) IsLoading() bool {
	return s.inflight.Load() > 0
}

// LoadAll replaces the events collection with the remote's full event set.
// In local mode state is already current, so it returns immediately.
func (s *Store) LoadAll(ctx context.Context) error {
	return s.reload(ctx, "catalog.LoadAll", s.remote.ListAllEvents, false)
}

// LoadMine replaces the events collection with the caller's own events.
func (s *Store) LoadMine(ctx context.Context) error {
	return s.reload(ctx, "catalog.LoadMine", s.remote.ListMyEvents, false)
}

// LoadMyRegistrations replaces the events collection with the events the
// caller is registered for, and rebuilds the registrations collection to
// match, so registration queries stay coherent under remote mode.
func (s *Store) LoadMyRegistrations(ctx context.Context) error {
	return s.reload(ctx, "catalog.LoadMyRegistrations", s.remote.ListMyRegistrations, true)
}

// reload fetches a fresh collection and swaps it in wholesale. Responses
// carry a monotonic sequence number taken at dispatch; a response that
// arrives after a later reload has already applied is discarded, so an
// out-of-order pair can never let older data overwrite newer.
func (s *Store) reload(ctx context.Context, op string, fetch func(context.Context) ([]models.Event, error), syncRegistrations bool) error {
	if !s.session.Active() {
		return nil
	}

	seq := s.reloadSeq.Add(1)

	s.inflight.Add(1)
	defer s.inflight.Add(-1)

	events, err := fetch(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.appliedSeq {
		s.log.Debug("stale reload discarded",
			slog.String("op", op),
			slog.Uint64("seq", seq),
		)

		return nil
	}
	s.appliedSeq = seq

	s.cols.Events = events

	if syncRegistrations {
		userID := s.session.UserID()

		regs := make([]models.Registration, 0, len(events))
		for _, ev := range events {
			regs = append(regs, models.Registration{
				ID:      ev.ID + ":" + userID,
				EventID: ev.ID,
				UserID:  userID,
				Status:  models.RegistrationConfirmed,
			})
		}
		s.cols.Registrations = regs
	}

	s.log.Info("collection reloaded",
		slog.String("op", op),
		slog.Int("count", len(events)),
	)

	return nil
}

// reloadAfterWrite follows a successful remote mutation. The mutation
// itself already succeeded, so a failed reload only leaves the local view
// stale; it is logged rather than returned, keeping "definitely failed"
// distinguishable from "succeeded with a stale view".
func (s *Store) reloadAfterWrite(ctx context.Context, op string, reload func(context.Context) error) {
	if err := reload(ctx); err != nil {
		s.log.Warn("reload after write failed", slog.String("op", op), sl.Err(err))
	}
}

// DashboardStats summarizes the organizer's events. Remote mode asks the
// backend; local mode computes the same shape from the collections.
func (s *Store) DashboardStats(ctx context.Context, organizerID string) (models.DashboardStats, error) {
	const op = "catalog.DashboardStats"

	if s.session.Active() {
		stats, err := s.remote.DashboardStats(ctx)
		if err != nil {
			return models.DashboardStats{}, fmt.Errorf("%s: %w", op, err)
		}

		return stats, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cols.Stats(organizerID, time.Now()), nil
}

// RefreshStatuses re-derives event statuses from the wall clock.
func (s *Store) RefreshStatuses() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.RefreshStatuses(&s.cols)
}
