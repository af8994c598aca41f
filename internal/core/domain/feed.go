package domain

// FeedPhase identifies where a feed is in its loading lifecycle.
// Exactly one phase is active at a time.
type FeedPhase int

const (
	// FeedEmpty is the initial phase before any load has started.
	FeedEmpty FeedPhase = iota

	// FeedInitialLoading is the first page load, with nothing to show yet.
	FeedInitialLoading

	// FeedLoaded means at least one page is available and no load is in flight.
	FeedLoaded

	// FeedLoadingMore is an append load for the next page.
	FeedLoadingMore

	// FeedRefreshing is a full reload from page one, keeping the old items
	// visible until the new first page arrives.
	FeedRefreshing

	// FeedFailed means the last load attempt failed. Items loaded before the
	// failure are preserved.
	FeedFailed
)

// String returns the phase name for logging and test output.
func (p FeedPhase) String() string {
	switch p {
	case FeedEmpty:
		return "empty"
	case FeedInitialLoading:
		return "initial_loading"
	case FeedLoaded:
		return "loaded"
	case FeedLoadingMore:
		return "loading_more"
	case FeedRefreshing:
		return "refreshing"
	case FeedFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// loading reports whether the phase has a request in flight.
func (p FeedPhase) loading() bool {
	return p == FeedInitialLoading || p == FeedLoadingMore || p == FeedRefreshing
}

// PageRequest describes one page fetch against the remote API.
// Page numbers are 1-based.
type PageRequest struct {
	Number int
	Size   int
}

// DefaultPageSize is the page size used when none is configured.
const DefaultPageSize = 20

// Feed is an incrementally growing remote list with explicit loading phases.
// It owns the page cursor and the end-of-data heuristic; it performs no IO
// itself. Callers drive it through Begin*/Complete/Fail and are expected to
// hold at most one load in flight, which the Begin* guards enforce.
//
// The end-of-data signal is a heuristic: a page smaller than the requested
// size is taken to mean there are no further pages. The remote API does not
// report a total, so the flag is approximate rather than authoritative.
type Feed[T any] struct {
	phase     FeedPhase
	items     []T
	nextPage  int
	pageSize  int
	exhausted bool
	failure   *FeedFailure

	// failedPhase remembers which loading phase produced the current failure
	// so Retry can re-enter it without touching the cursor.
	failedPhase FeedPhase
}

// FeedFailure captures a failed load reduced to a display string, plus the
// error class so callers can still tell transient from permanent failures.
type FeedFailure struct {
	Class   ErrorClass
	Message string
}

// NewFeed creates an empty feed that requests pages of the given size.
func NewFeed[T any](pageSize int) *Feed[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Feed[T]{
		phase:    FeedEmpty,
		nextPage: 1,
		pageSize: pageSize,
	}
}

// Phase returns the active phase.
func (f *Feed[T]) Phase() FeedPhase { return f.phase }

// Items returns the loaded items. The slice is shared; callers must not
// mutate it.
func (f *Feed[T]) Items() []T { return f.items }

// Len returns the number of loaded items.
func (f *Feed[T]) Len() int { return len(f.items) }

// NextPage returns the cursor: the page number the next fetch should request.
func (f *Feed[T]) NextPage() int { return f.nextPage }

// PageSize returns the configured page size.
func (f *Feed[T]) PageSize() int { return f.pageSize }

// Exhausted reports whether the heuristic end-of-data signal has fired.
func (f *Feed[T]) Exhausted() bool { return f.exhausted }

// Failure returns the recorded failure, or nil outside FeedFailed.
func (f *Feed[T]) Failure() *FeedFailure { return f.failure }

// Loading reports whether a load is in flight.
func (f *Feed[T]) Loading() bool { return f.phase.loading() }

// BeginInitial starts the first page load. It is a no-op unless the feed is
// empty and idle. Returns the page to fetch, or ok=false if the transition
// is not allowed.
func (f *Feed[T]) BeginInitial() (page PageRequest, ok bool) {
	if f.phase != FeedEmpty {
		return PageRequest{}, false
	}
	f.phase = FeedInitialLoading
	f.failure = nil
	return PageRequest{Number: f.nextPage, Size: f.pageSize}, true
}

// BeginRefresh starts a reload from page one. Allowed from FeedLoaded and
// from FeedFailed once items exist. The cursor resets to 1 and the
// exhaustion flag resets, since a refreshed list may have grown.
func (f *Feed[T]) BeginRefresh() (page PageRequest, ok bool) {
	if f.phase != FeedLoaded && !(f.phase == FeedFailed && len(f.items) > 0) {
		return PageRequest{}, false
	}
	f.phase = FeedRefreshing
	f.failure = nil
	f.nextPage = 1
	f.exhausted = false
	return PageRequest{Number: 1, Size: f.pageSize}, true
}

// BeginLoadMore starts an append load for the next page. The guard requires
// an idle loaded feed with items present and more data believed to exist;
// otherwise it is a no-op.
func (f *Feed[T]) BeginLoadMore() (page PageRequest, ok bool) {
	if f.phase != FeedLoaded || f.exhausted || len(f.items) == 0 {
		return PageRequest{}, false
	}
	f.phase = FeedLoadingMore
	f.failure = nil
	return PageRequest{Number: f.nextPage, Size: f.pageSize}, true
}

// Retry re-enters the loading phase that produced the current failure,
// without altering the cursor. Returns ok=false outside FeedFailed.
func (f *Feed[T]) Retry() (page PageRequest, ok bool) {
	if f.phase != FeedFailed {
		return PageRequest{}, false
	}
	phase := f.failedPhase
	if !phase.loading() {
		phase = FeedInitialLoading
	}
	f.phase = phase
	f.failure = nil
	n := f.nextPage
	if phase == FeedRefreshing {
		n = 1
	}
	return PageRequest{Number: n, Size: f.pageSize}, true
}

// Complete applies a successfully fetched page. Initial and refresh loads
// replace the collection; load-more appends. The cursor advances by one and
// the exhaustion flag is recomputed from the page size heuristic. Calling
// Complete outside a loading phase is a no-op (a stale response arriving
// after a competing transition; last write wins is accepted here).
func (f *Feed[T]) Complete(page []T) {
	switch f.phase {
	case FeedInitialLoading, FeedRefreshing:
		f.items = page
		f.nextPage = 2
	case FeedLoadingMore:
		f.items = append(f.items, page...)
		f.nextPage++
	default:
		return
	}
	f.exhausted = len(page) < f.pageSize
	f.phase = FeedLoaded
	f.failure = nil
}

// Fail records a failed load. Previously loaded items are preserved and the
// cursor does not move. Outside a loading phase the call is a no-op.
func (f *Feed[T]) Fail(err error) {
	if !f.phase.loading() {
		return
	}
	f.failedPhase = f.phase
	f.phase = FeedFailed
	f.failure = &FeedFailure{
		Class:   Classify(err),
		Message: FailureMessage(err),
	}
}
