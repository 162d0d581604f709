// internal/core/store/store.go
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/labsuite/labstock/internal/adapters/rest"
	"github.com/labsuite/labstock/internal/core/domain"
	"github.com/labsuite/labstock/internal/core/ports"
)

// Fallback messages used when the backend rejection carries no message of
// its own.
const (
	msgFetchFailed          = "Failed to load components"
	msgFetchOneFailed       = "Failed to load component"
	msgCreateFailed         = "Failed to create component"
	msgUpdateFailed         = "Failed to update component"
	msgUpdateQuantityFailed = "Failed to update quantity"
	msgDeleteFailed         = "Failed to delete component"
)

// CollectionStore is the client-side source of truth for the current
// filtered/paginated view of the remote component collection. All state
// behind it is owned exclusively by the store; callers observe it through
// Snapshot.
type CollectionStore struct {
	service  ports.ComponentService
	notifier ports.Notifier
	logger   *slog.Logger

	mu         sync.Mutex
	components []*domain.Component
	criteria   domain.ListCriteria
	pagination domain.Pagination
	current    *domain.Component
	loading    bool
	lastErr    string
	fetchSeq   uint64
}

// Snapshot is a point-in-time copy of the store's observable state.
type Snapshot struct {
	Components []*domain.Component
	Criteria   domain.ListCriteria
	Pagination domain.Pagination
	Current    *domain.Component
	Loading    bool
	Err        string
}

// New creates a collection store over the remote component service.
func New(service ports.ComponentService, notifier ports.Notifier, logger *slog.Logger) *CollectionStore {
	return &CollectionStore{
		service:    service,
		notifier:   notifier,
		logger:     logger.With(slog.String("component", "collection_store")),
		pagination: domain.DefaultPagination(),
	}
}

// Snapshot returns a copy of the current state. The component slice header
// is copied; items are shared and must be treated as read-only.
func (s *CollectionStore) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	components := make([]*domain.Component, len(s.components))
	copy(components, s.components)
	return Snapshot{
		Components: components,
		Criteria:   s.criteria,
		Pagination: s.pagination,
		Current:    s.current,
		Loading:    s.loading,
		Err:        s.lastErr,
	}
}

// FetchPage loads one page of the collection matching criteria and makes
// both the criteria and pagination the store's current view. When fetches
// overlap, only the last-issued request's result is applied; a superseded
// result is discarded on arrival.
func (s *CollectionStore) FetchPage(ctx context.Context, criteria domain.ListCriteria, page domain.Pagination) error {
	if page.Page < 1 {
		return fmt.Errorf("%w: page must be >= 1", domain.ErrValidation)
	}
	if page.Limit <= 0 {
		return fmt.Errorf("%w: limit must be > 0", domain.ErrValidation)
	}

	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.criteria = criteria
	s.pagination = page
	s.loading = true
	s.mu.Unlock()

	result, err := s.service.List(ctx, criteria, page)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.fetchSeq {
		// A newer fetch was issued while this one was in flight. Its
		// result owns the snapshot; this one is discarded.
		s.logger.DebugContext(ctx, "discarding superseded fetch result",
			slog.Uint64("seq", seq),
			slog.Uint64("latest", s.fetchSeq))
		return nil
	}
	s.loading = false

	if err != nil {
		s.lastErr = userMessage(err, msgFetchFailed)
		s.notifyErrorLocked(ctx, s.lastErr)
		s.logger.ErrorContext(ctx, "failed to fetch component page",
			slog.Int("page", page.Page),
			slog.String("error", err.Error()))
		return err
	}

	s.components = result.Components
	if result.CurrentPage > 0 {
		s.pagination.Page = result.CurrentPage
	}
	s.pagination = s.pagination.ApplyTotals(result.Total, result.TotalPages)
	s.lastErr = ""

	s.logger.DebugContext(ctx, "component page loaded",
		slog.Int("count", len(result.Components)),
		slog.Int("page", s.pagination.Page),
		slog.Int64("total", result.Total))
	return nil
}

// Refresh re-issues a fetch for the store's current criteria and
// pagination.
func (s *CollectionStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	criteria := s.criteria
	page := s.pagination
	s.mu.Unlock()
	return s.FetchPage(ctx, criteria, page)
}

// FetchOne loads a single component as the "current component" used by
// edit flows. Any prior current component is cleared before the request
// is issued so stale data never leaks between sequential navigations.
func (s *CollectionStore) FetchOne(ctx context.Context, id string) (*domain.Component, error) {
	s.mu.Lock()
	s.current = nil
	s.loading = true
	s.mu.Unlock()

	comp, err := s.service.Get(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = userMessage(err, msgFetchOneFailed)
		s.notifyErrorLocked(ctx, s.lastErr)
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "component not found", slog.String("id", id))
		} else {
			s.logger.ErrorContext(ctx, "failed to fetch component",
				slog.String("id", id),
				slog.String("error", err.Error()))
		}
		return nil, err
	}
	s.current = comp
	s.lastErr = ""
	return comp, nil
}

// ClearCurrent drops the current component on navigation away from an
// edit screen.
func (s *CollectionStore) ClearCurrent() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Create registers a new component. On success the stored record is
// prepended to the in-memory list rather than re-fetched.
func (s *CollectionStore) Create(ctx context.Context, data *domain.Component) (*domain.Component, error) {
	if err := data.Validate(); err != nil {
		s.recordError(ctx, err.Error())
		return nil, err
	}

	created, err := s.service.Create(ctx, data)
	if err != nil {
		s.recordError(ctx, userMessage(err, msgCreateFailed))
		return nil, err
	}

	s.mu.Lock()
	s.components = append([]*domain.Component{created}, s.components...)
	s.pagination.TotalCount++
	s.lastErr = ""
	s.mu.Unlock()

	s.notifier.Success(ctx, fmt.Sprintf("Component %q created", created.Name))
	s.logger.InfoContext(ctx, "component created",
		slog.String("id", created.ID),
		slog.String("name", created.Name))
	return created, nil
}

// Update replaces the full record. On success the matching item is
// replaced in place by id, preserving list order, and the current
// component is updated when it is the one being edited.
func (s *CollectionStore) Update(ctx context.Context, id string, data *domain.Component) (*domain.Component, error) {
	if err := data.Validate(); err != nil {
		s.recordError(ctx, err.Error())
		return nil, err
	}

	updated, err := s.service.Update(ctx, id, data)
	if err != nil {
		s.recordError(ctx, userMessage(err, msgUpdateFailed))
		return nil, err
	}

	s.mu.Lock()
	for i, c := range s.components {
		if c.ID == id {
			s.components[i] = updated
			break
		}
	}
	if s.current != nil && s.current.ID == id {
		s.current = updated
	}
	s.lastErr = ""
	s.mu.Unlock()

	s.notifier.Success(ctx, fmt.Sprintf("Component %q updated", updated.Name))
	s.logger.InfoContext(ctx, "component updated", slog.String("id", id))
	return updated, nil
}

// UpdateQuantity performs the narrow quantity-only update and then
// re-fetches the full list, since a quantity change can move items in and
// out of the low-stock classification and shifts aggregate figures.
func (s *CollectionStore) UpdateQuantity(ctx context.Context, id string, q domain.QuantityUpdate) (*domain.Component, error) {
	if err := q.Validate(); err != nil {
		s.recordError(ctx, err.Error())
		return nil, err
	}

	updated, err := s.service.UpdateQuantity(ctx, id, q)
	if err != nil {
		s.recordError(ctx, userMessage(err, msgUpdateQuantityFailed))
		return nil, err
	}

	s.notifier.Success(ctx, fmt.Sprintf("Quantity of %q set to %d", updated.Name, updated.Quantity))
	s.logger.InfoContext(ctx, "component quantity updated",
		slog.String("id", id),
		slog.Int("quantity", updated.Quantity))

	if err := s.Refresh(ctx); err != nil {
		// The mutation itself succeeded; the stale list keeps the prior
		// snapshot and the refresh failure is already recorded.
		return updated, nil
	}
	return updated, nil
}

// Delete removes a component. On failure the list is left untouched.
func (s *CollectionStore) Delete(ctx context.Context, id string) error {
	if err := s.service.Delete(ctx, id); err != nil {
		s.recordError(ctx, userMessage(err, msgDeleteFailed))
		return err
	}

	s.mu.Lock()
	for i, c := range s.components {
		if c.ID == id {
			s.components = append(s.components[:i], s.components[i+1:]...)
			s.pagination.TotalCount--
			break
		}
	}
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.lastErr = ""
	s.mu.Unlock()

	s.notifier.Success(ctx, "Component deleted")
	s.logger.InfoContext(ctx, "component deleted", slog.String("id", id))
	return nil
}

// SetFilters shallow-merges the patch into the current criteria and
// resets pagination to page 1: a filter change always restarts browsing
// from the top. The page size is kept.
func (s *CollectionStore) SetFilters(patch domain.CriteriaPatch) {
	s.mu.Lock()
	s.criteria = s.criteria.Merge(patch)
	s.pagination.Page = 1
	s.mu.Unlock()
}

// ResetFilters restores the default criteria and resets to page 1.
func (s *CollectionStore) ResetFilters() {
	s.mu.Lock()
	s.criteria = domain.ListCriteria{}
	s.pagination.Page = 1
	s.mu.Unlock()
}

// SetPagination shallow-merges the patch into the current pagination.
// Filters are untouched. Whether the resulting page is fetchable against
// the current totals is the caller's concern.
func (s *CollectionStore) SetPagination(patch domain.PaginationPatch) {
	s.mu.Lock()
	s.pagination = s.pagination.Merge(patch)
	s.mu.Unlock()
}

// recordError stores msg as the current error state and emits the error
// signal. The prior snapshot stays intact.
func (s *CollectionStore) recordError(ctx context.Context, msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
	s.notifier.Error(ctx, msg)
}

// notifyErrorLocked emits without retaking the lock. The notifier must
// not call back into the store.
func (s *CollectionStore) notifyErrorLocked(ctx context.Context, msg string) {
	s.notifier.Error(ctx, msg)
}

// userMessage prefers the backend's own message and falls back to the
// per-operation default.
func userMessage(err error, fallback string) string {
	if msg := rest.ServiceMessage(err); msg != "" {
		return msg
	}
	return fallback
}
