package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dartsops/darts_management_app/internal/core/domain"
	"github.com/dartsops/darts_management_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeHistory builds n records newest first with strictly descending timestamps.
func makeHistory(n int) []domain.CollectionRecord {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := make([]domain.CollectionRecord, n)
	for i := 0; i < n; i++ {
		records[i] = domain.CollectionRecord{
			CollectionID:    fmt.Sprintf("col-%03d", i),
			MachineID:       1,
			TotalCollection: decimal.NewFromInt(int64(i)),
			CreatedAt:       base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return records
}

// pageSource serves makeHistory-style records the way the repository would:
// records strictly older than the cursor position, up to limit.
func pageSource(records []domain.CollectionRecord, fetchCount *int) services.PageFetchFunc {
	return func(ctx context.Context, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error) {
		*fetchCount++
		start := 0
		if cursor != nil {
			for i, r := range records {
				if r.CollectionID == cursor.CollectionID {
					start = i + 1
					break
				}
			}
		}
		end := start + limit
		if end > len(records) {
			end = len(records)
		}
		return records[start:end], nil
	}
}

func TestHistoryWalker_DrainsAllPages(t *testing.T) {
	history := makeHistory(25)
	fetchCount := 0
	walker := services.NewHistoryWalker(pageSource(history, &fetchCount), 10)

	got, err := walker.DrainAll(context.Background())
	require.NoError(t, err)

	// 10 + 10 + 5: the short page ends the walk.
	assert.Equal(t, 3, fetchCount)
	require.Len(t, got, 25)
	for i, r := range got {
		assert.Equal(t, history[i].CollectionID, r.CollectionID, "record %d out of order or duplicated", i)
	}
	assert.False(t, walker.HasMore())
	assert.Equal(t, services.WalkerLoaded, walker.State())
}

func TestHistoryWalker_ExactPageBoundaryNeedsOneExtraFetch(t *testing.T) {
	// 20 records at page size 10: the second page is full, so the walker
	// cannot know it is done until a third, empty fetch.
	history := makeHistory(20)
	fetchCount := 0
	walker := services.NewHistoryWalker(pageSource(history, &fetchCount), 10)

	got, err := walker.DrainAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, fetchCount)
	assert.Len(t, got, 20)
	assert.False(t, walker.HasMore())
}

func TestHistoryWalker_KeepsRecordsOnError(t *testing.T) {
	history := makeHistory(15)
	fetchCount := 0
	source := pageSource(history, &fetchCount)
	failNext := false
	boom := errors.New("connection reset")

	walker := services.NewHistoryWalker(func(ctx context.Context, limit int, cursor *domain.CollectionCursor) ([]domain.CollectionRecord, error) {
		if failNext {
			failNext = false
			return nil, boom
		}
		return source(ctx, limit, cursor)
	}, 10)

	_, err := walker.LoadNext(context.Background())
	require.NoError(t, err)
	assert.Len(t, walker.Records(), 10)

	failNext = true
	_, err = walker.LoadNext(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Equal(t, services.WalkerFailed, walker.State())
	assert.ErrorIs(t, walker.Err(), boom)

	// The first page survived the failure and the retry picks up where it left off.
	assert.Len(t, walker.Records(), 10)
	page, err := walker.LoadNext(context.Background())
	require.NoError(t, err)
	assert.Len(t, page, 5)
	assert.Len(t, walker.Records(), 15)
	assert.False(t, walker.HasMore())
}

func TestHistoryWalker_ExhaustedWalkIsIdempotent(t *testing.T) {
	history := makeHistory(5)
	fetchCount := 0
	walker := services.NewHistoryWalker(pageSource(history, &fetchCount), 10)

	_, err := walker.DrainAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, fetchCount)

	page, err := walker.LoadNext(context.Background())
	require.NoError(t, err)
	assert.Nil(t, page)
	assert.Equal(t, 1, fetchCount, "no fetch once exhausted")
}

func TestHistoryWalker_ResetRewindsToNewest(t *testing.T) {
	history := makeHistory(8)
	fetchCount := 0
	walker := services.NewHistoryWalker(pageSource(history, &fetchCount), 5)

	_, err := walker.LoadNext(context.Background())
	require.NoError(t, err)
	require.Len(t, walker.Records(), 5)

	walker.Reset()
	assert.Empty(t, walker.Records())
	assert.Equal(t, services.WalkerIdle, walker.State())
	assert.True(t, walker.HasMore())

	got, err := walker.DrainAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 8)
	assert.Equal(t, "col-000", got[0].CollectionID)
}
