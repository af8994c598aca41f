package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func page(start, n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = start + i
	}
	return items
}

func TestNewFeed_Defaults(t *testing.T) {
	f := NewFeed[int](0)

	assert.Equal(t, FeedEmpty, f.Phase())
	assert.Equal(t, 1, f.NextPage())
	assert.Equal(t, DefaultPageSize, f.PageSize())
	assert.False(t, f.Exhausted())
	assert.Nil(t, f.Failure())
	assert.Empty(t, f.Items())
}

func TestFeed_InitialLoad_FullPage(t *testing.T) {
	f := NewFeed[int](20)

	req, ok := f.BeginInitial()
	require.True(t, ok)
	assert.Equal(t, PageRequest{Number: 1, Size: 20}, req)
	assert.Equal(t, FeedInitialLoading, f.Phase())

	f.Complete(page(0, 20))

	assert.Equal(t, FeedLoaded, f.Phase())
	assert.Equal(t, 20, f.Len())
	assert.Equal(t, 2, f.NextPage())
	assert.False(t, f.Exhausted())
}

func TestFeed_InitialLoad_ShortPageExhausts(t *testing.T) {
	f := NewFeed[int](20)

	_, ok := f.BeginInitial()
	require.True(t, ok)
	f.Complete(page(0, 7))

	assert.Equal(t, FeedLoaded, f.Phase())
	assert.Equal(t, 7, f.Len())
	assert.True(t, f.Exhausted())
}

func TestFeed_InitialLoad_EmptyPage(t *testing.T) {
	f := NewFeed[int](20)

	_, ok := f.BeginInitial()
	require.True(t, ok)
	f.Complete(nil)

	assert.Equal(t, FeedLoaded, f.Phase())
	assert.Equal(t, 0, f.Len())
	assert.True(t, f.Exhausted())
}

func TestFeed_BeginInitial_OnlyFromEmpty(t *testing.T) {
	f := NewFeed[int](20)
	_, ok := f.BeginInitial()
	require.True(t, ok)
	f.Complete(page(0, 20))

	_, ok = f.BeginInitial()
	assert.False(t, ok)
	assert.Equal(t, FeedLoaded, f.Phase())
}

func TestFeed_LoadMore_AppendsAndAdvancesCursor(t *testing.T) {
	f := NewFeed[int](20)
	_, _ = f.BeginInitial()
	f.Complete(page(0, 20))

	req, ok := f.BeginLoadMore()
	require.True(t, ok)
	assert.Equal(t, 2, req.Number)
	assert.Equal(t, FeedLoadingMore, f.Phase())

	f.Complete(page(20, 20))

	assert.Equal(t, 40, f.Len())
	assert.Equal(t, 3, f.NextPage())
	assert.False(t, f.Exhausted())
	// Order is page order: earlier pages first.
	assert.Equal(t, 0, f.Items()[0])
	assert.Equal(t, 39, f.Items()[39])
}

func TestFeed_LoadMore_ShortPageEndsFeed(t *testing.T) {
	f := NewFeed[int](20)
	_, _ = f.BeginInitial()
	f.Complete(page(0, 20))

	_, ok := f.BeginLoadMore()
	require.True(t, ok)
	f.Complete(page(20, 5))

	assert.Equal(t, 25, f.Len())
	assert.Equal(t, 3, f.NextPage())
	assert.True(t, f.Exhausted())

	// A third attempt is blocked by the exhaustion flag.
	_, ok = f.BeginLoadMore()
	assert.False(t, ok)
	assert.Equal(t, FeedLoaded, f.Phase())
	assert.Equal(t, 25, f.Len())
}

func TestFeed_BeginLoadMore_Guards(t *testing.T) {
	t.Run("empty feed", func(t *testing.T) {
		f := NewFeed[int](20)
		_, ok := f.BeginLoadMore()
		assert.False(t, ok)
	})

	t.Run("no items loaded", func(t *testing.T) {
		f := NewFeed[int](20)
		_, _ = f.BeginInitial()
		f.Complete(nil)
		// Exhausted and empty; both block.
		_, ok := f.BeginLoadMore()
		assert.False(t, ok)
	})

	t.Run("already loading", func(t *testing.T) {
		f := NewFeed[int](20)
		_, _ = f.BeginInitial()
		f.Complete(page(0, 20))
		_, ok := f.BeginLoadMore()
		require.True(t, ok)

		_, ok = f.BeginLoadMore()
		assert.False(t, ok)
		assert.Equal(t, FeedLoadingMore, f.Phase())
	})
}

func TestFeed_Refresh_ReplacesCollection(t *testing.T) {
	f := NewFeed[int](20)
	_, _ = f.BeginInitial()
	f.Complete(page(0, 20))
	_, _ = f.BeginLoadMore()
	f.Complete(page(20, 20))
	require.Equal(t, 40, f.Len())

	req, ok := f.BeginRefresh()
	require.True(t, ok)
	assert.Equal(t, 1, req.Number)
	assert.Equal(t, FeedRefreshing, f.Phase())
	// Old items stay visible while the refresh is in flight.
	assert.Equal(t, 40, f.Len())

	f.Complete(page(100, 20))

	assert.Equal(t, FeedLoaded, f.Phase())
	assert.Equal(t, 20, f.Len())
	assert.Equal(t, 100, f.Items()[0])
	assert.Equal(t, 2, f.NextPage())
	assert.False(t, f.Exhausted())
}

func TestFeed_Refresh_ResetsExhaustion(t *testing.T) {
	f := NewFeed[int](20)
	_, _ = f.BeginInitial()
	f.Complete(page(0, 5))
	require.True(t, f.Exhausted())

	_, ok := f.BeginRefresh()
	require.True(t, ok)
	assert.False(t, f.Exhausted())

	f.Complete(page(0, 20))
	assert.False(t, f.Exhausted())

	_, ok = f.BeginLoadMore()
	assert.True(t, ok)
}

func TestFeed_BeginRefresh_Guards(t *testing.T) {
	t.Run("empty feed", func(t *testing.T) {
		f := NewFeed[int](20)
		_, ok := f.BeginRefresh()
		assert.False(t, ok)
	})

	t.Run("failed without items", func(t *testing.T) {
		f := NewFeed[int](20)
		_, _ = f.BeginInitial()
		f.Fail(errors.New("boom"))
		_, ok := f.BeginRefresh()
		assert.False(t, ok)
	})

	t.Run("failed with items", func(t *testing.T) {
		f := NewFeed[int](20)
		_, _ = f.BeginInitial()
		f.Complete(page(0, 20))
		_, _ = f.BeginLoadMore()
		f.Fail(errors.New("boom"))

		req, ok := f.BeginRefresh()
		assert.True(t, ok)
		assert.Equal(t, 1, req.Number)
	})

	t.Run("while loading", func(t *testing.T) {
		f := NewFeed[int](20)
		_, _ = f.BeginInitial()
		_, ok := f.BeginRefresh()
		assert.False(t, ok)
	})
}

func TestFeed_Fail_PreservesItemsAndCursor(t *testing.T) {
	f := NewFeed[int](20)
	_, _ = f.BeginInitial()
	f.Complete(page(0, 20))
	_, _ = f.BeginLoadMore()

	f.Fail(errors.New("connection reset"))

	assert.Equal(t, FeedFailed, f.Phase())
	assert.Equal(t, 20, f.Len())
	assert.Equal(t, 2, f.NextPage())
	require.NotNil(t, f.Failure())
	assert.Equal(t, "connection reset", f.Failure().Message)
	assert.Equal(t, ClassTransport, f.Failure().Class)
}

func TestFeed_Fail_ClassifiesAuthErrors(t *testing.T) {
	f := NewFeed[int](20)
	_, _ = f.BeginInitial()
	f.Fail(ErrNotAuthenticated)

	require.NotNil(t, f.Failure())
	assert.Equal(t, ClassAuth, f.Failure().Class)
	assert.Equal(t, "Not authenticated", f.Failure().Message)
}

func TestFeed_Retry_ResumesFailedLoadMore(t *testing.T) {
	f := NewFeed[int](20)
	_, _ = f.BeginInitial()
	f.Complete(page(0, 20))
	_, _ = f.BeginLoadMore()
	f.Fail(errors.New("boom"))

	req, ok := f.Retry()
	require.True(t, ok)
	// Same page as the failed attempt; the cursor did not move.
	assert.Equal(t, 2, req.Number)
	assert.Equal(t, FeedLoadingMore, f.Phase())
	assert.Nil(t, f.Failure())

	f.Complete(page(20, 20))
	assert.Equal(t, 40, f.Len())
	assert.Equal(t, 3, f.NextPage())
}

func TestFeed_Retry_ResumesFailedInitial(t *testing.T) {
	f := NewFeed[int](20)
	_, _ = f.BeginInitial()
	f.Fail(errors.New("boom"))

	req, ok := f.Retry()
	require.True(t, ok)
	assert.Equal(t, 1, req.Number)
	assert.Equal(t, FeedInitialLoading, f.Phase())
}

func TestFeed_Retry_FailedRefreshRequestsPageOne(t *testing.T) {
	f := NewFeed[int](20)
	_, _ = f.BeginInitial()
	f.Complete(page(0, 20))
	_, _ = f.BeginRefresh()
	f.Fail(errors.New("boom"))

	req, ok := f.Retry()
	require.True(t, ok)
	assert.Equal(t, 1, req.Number)
	assert.Equal(t, FeedRefreshing, f.Phase())
	assert.Equal(t, 20, f.Len())
}

func TestFeed_Retry_OnlyFromFailed(t *testing.T) {
	f := NewFeed[int](20)
	_, ok := f.Retry()
	assert.False(t, ok)

	_, _ = f.BeginInitial()
	f.Complete(page(0, 20))
	_, ok = f.Retry()
	assert.False(t, ok)
}

func TestFeed_Complete_NoOpWhenIdle(t *testing.T) {
	f := NewFeed[int](20)
	_, _ = f.BeginInitial()
	f.Complete(page(0, 20))

	// A stale response after the load already settled changes nothing.
	f.Complete(page(500, 20))

	assert.Equal(t, 20, f.Len())
	assert.Equal(t, 0, f.Items()[0])
	assert.Equal(t, 2, f.NextPage())
}

func TestFeed_Fail_NoOpWhenIdle(t *testing.T) {
	f := NewFeed[int](20)
	_, _ = f.BeginInitial()
	f.Complete(page(0, 20))

	f.Fail(errors.New("stale"))

	assert.Equal(t, FeedLoaded, f.Phase())
	assert.Nil(t, f.Failure())
}

func TestFeedPhase_String(t *testing.T) {
	tests := []struct {
		phase    FeedPhase
		expected string
	}{
		{FeedEmpty, "empty"},
		{FeedInitialLoading, "initial_loading"},
		{FeedLoaded, "loaded"},
		{FeedLoadingMore, "loading_more"},
		{FeedRefreshing, "refreshing"},
		{FeedFailed, "failed"},
		{FeedPhase(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestFeed_WalkToExhaustion(t *testing.T) {
	f := NewFeed[int](10)
	_, ok := f.BeginInitial()
	require.True(t, ok)
	f.Complete(page(0, 10))

	for i := 0; ; i++ {
		require.Less(t, i, 10, "feed never exhausted")
		req, ok := f.BeginLoadMore()
		if !ok {
			break
		}
		n := 10
		if req.Number == 4 {
			n = 3
		}
		f.Complete(page((req.Number-1)*10, n))
	}

	assert.True(t, f.Exhausted())
	assert.Equal(t, 33, f.Len())
	assert.Equal(t, 5, f.NextPage())
	for i, v := range f.Items() {
		require.Equal(t, i, v, fmt.Sprintf("item %d out of order", i))
	}
}
