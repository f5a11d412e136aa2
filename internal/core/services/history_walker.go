package services

import (
	"context"
	"sync"

	"github.com/dartsops/darts_management_app/internal/core/domain"
)

// WalkerState describes where a HistoryWalker is in its page-loading lifecycle.
type WalkerState int

const (
	WalkerIdle WalkerState = iota
	WalkerLoading
	WalkerLoaded
	WalkerFailed
)

// PageFetchFunc returns one page of collection records strictly older than the
// cursor position, newest first. A nil cursor requests the first page.
type PageFetchFunc func(ctx context.Context, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error)

// HistoryWalker drains a collection history page by page, accumulating records
// in order. A full page implies more may follow; a short page ends the walk.
// While a load is in flight further LoadNext calls return immediately without
// issuing a second fetch, and a failed load keeps every record already
// accumulated so the walk can be retried from the same position.
type HistoryWalker struct {
	mu       sync.Mutex
	fetch    PageFetchFunc
	pageSize int

	state   WalkerState
	records []domain.CollectionRecord
	cursor  *domain.CollectionCursor
	hasMore bool
	lastErr error
}

// NewHistoryWalker creates a walker over the given page source.
func NewHistoryWalker(fetch PageFetchFunc, pageSize int) *HistoryWalker {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &HistoryWalker{
		fetch:    fetch,
		pageSize: pageSize,
		state:    WalkerIdle,
		hasMore:  true,
	}
}

// LoadNext fetches and appends the next page, returning just that page.
// It returns (nil, nil) when the history is exhausted or when another load is
// already in flight.
func (w *HistoryWalker) LoadNext(ctx context.Context) ([]domain.CollectionRecord, error) {
	w.mu.Lock()
	if w.state == WalkerLoading || !w.hasMore {
		w.mu.Unlock()
		return nil, nil
	}
	w.state = WalkerLoading
	cursor := w.cursor
	w.mu.Unlock()

	page, err := w.fetch(ctx, w.pageSize, cursor)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.state = WalkerFailed
		w.lastErr = err
		return nil, err
	}

	w.state = WalkerLoaded
	w.lastErr = nil
	w.records = append(w.records, page...)
	w.hasMore = len(page) == w.pageSize
	if len(page) > 0 {
		last := page[len(page)-1]
		w.cursor = &domain.CollectionCursor{CreatedAt: last.CreatedAt, CollectionID: last.CollectionID}
	}
	return page, nil
}

// DrainAll loads pages until the history is exhausted and returns everything
// accumulated, including records from before the call.
func (w *HistoryWalker) DrainAll(ctx context.Context) ([]domain.CollectionRecord, error) {
	for w.HasMore() {
		if _, err := w.LoadNext(ctx); err != nil {
			return nil, err
		}
	}
	return w.Records(), nil
}

// Records returns a copy of everything accumulated so far.
func (w *HistoryWalker) Records() []domain.CollectionRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.CollectionRecord, len(w.records))
	copy(out, w.records)
	return out
}

// HasMore reports whether another LoadNext could yield records.
func (w *HistoryWalker) HasMore() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.hasMore
}

// State returns the walker's current lifecycle state.
func (w *HistoryWalker) State() WalkerState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Err returns the error from the most recent failed load, nil after a
// successful load or before any load.
func (w *HistoryWalker) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Reset discards all accumulated records and rewinds to the newest record.
func (w *HistoryWalker) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = WalkerIdle
	w.records = nil
	w.cursor = nil
	w.hasMore = true
	w.lastErr = nil
}
