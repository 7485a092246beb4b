package catalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventCatalog/internal/catalog/remote"
	"eventCatalog/internal/models"
)

// mutator is one mode's implementation of the catalog's mutating commands.
// The two implementations keep their invariants independently testable:
// localMutator is synchronous and exact, remoteMutator delegates to the
// backend and reloads afterwards.
type mutator interface {
	create(ctx context.Context, draft models.EventDraft) (models.Event, error)
	update(ctx context.Context, id string, patch models.EventPatch) error
	delete(ctx context.Context, id string) error
	register(ctx context.Context, eventID, userID string) (bool, error)
}

// mutator is the mode selector: re-evaluated on every command, never mixed
// within one.
func (s *Store) mutator() mutator {
	if s.session.Active() {
		return remoteMutator{s}
	}

	return localMutator{s}
}

type localMutator struct {
	store *Store
}

func (m localMutator) create(_ context.Context, draft models.EventDraft) (models.Event, error) {
	s := m.store

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Create(&s.cols, draft), nil
}

func (m localMutator) update(_ context.Context, id string, patch models.EventPatch) error {
	s := m.store

	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Update(&s.cols, id, patch)

	return nil
}

func (m localMutator) delete(_ context.Context, id string) error {
	s := m.store

	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Delete(&s.cols, id)

	return nil
}

func (m localMutator) register(_ context.Context, eventID, userID string) (bool, error) {
	s := m.store

	// The capacity check and the mutation must not be interleaved by
	// another command, so both happen under the one store lock.
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Register(&s.cols, eventID, userID), nil
}

type remoteMutator struct {
	store *Store
}

func (m remoteMutator) create(ctx context.Context, draft models.EventDraft) (models.Event, error) {
	s := m.store

	ev, err := s.remote.CreateEvent(ctx, draft)
	if err != nil {
		return models.Event{}, err
	}

	s.reloadAfterWrite(ctx, "catalog.AddEvent", s.LoadMine)

	return ev, nil
}

func (m remoteMutator) update(ctx context.Context, id string, patch models.EventPatch) error {
	s := m.store

	if _, err := s.remote.UpdateEvent(ctx, id, patch); err != nil {
		return err
	}

	s.reloadAfterWrite(ctx, "catalog.UpdateEvent", s.LoadMine)

	return nil
}

func (m remoteMutator) delete(ctx context.Context, id string) error {
	s := m.store

	if err := s.remote.DeleteEvent(ctx, id); err != nil {
		var apiErr *remote.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}

		return err
	}

	s.reloadAfterWrite(ctx, "catalog.DeleteEvent", s.LoadMine)

	return nil
}

func (m remoteMutator) register(ctx context.Context, eventID, userID string) (bool, error) {
	s := m.store

	// The backend is the sole arbiter of capacity here; userID travels
	// inside the credential, not as an argument.
	_ = userID

	if err := s.remote.RegisterForEvent(ctx, eventID); err != nil {
		var apiErr *remote.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			// The backend refused the registration: full, duplicate, or
			// unknown event. An expected outcome, reported as false.
			s.log.Info("registration refused by remote",
				slog.String("event_id", eventID),
				slog.String("reason", apiErr.Message),
			)

			return false, nil
		}

		return false, err
	}

	s.reloadAfterWrite(ctx, "catalog.RegisterForEvent", s.LoadAll)

	return true, nil
}
