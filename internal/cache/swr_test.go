package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type countingLoader struct {
	calls atomic.Int32
	mu    sync.Mutex
	value []string
	err   error
}

func (l *countingLoader) Load(context.Context) ([]string, error) {
	l.calls.Add(1)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	return append([]string(nil), l.value...), nil
}

func (l *countingLoader) Set(value []string, err error) {
	l.mu.Lock()
	l.value, l.err = value, err
	l.mu.Unlock()
}

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) GetJSON(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.data[key]
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (m *memStore) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *memStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	for _, k := range keys {
		delete(m.data, k)
	}
	m.mu.Unlock()
	return nil
}

func newTestSWR(l *countingLoader, store Store) (*SWR[[]string], *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewSWR(Options{Key: "nav", TTL: time.Minute, MaxStale: 10 * time.Minute, Store: store}, l.Load)
	c.now = clock.Now
	return c, clock
}

func TestSWR_FreshHitDoesNotReload(t *testing.T) {
	l := &countingLoader{value: []string{"a"}}
	c, clock := newTestSWR(l, nil)

	r := c.Get(context.Background())
	require.NoError(t, r.Err)
	assert.Equal(t, []string{"a"}, r.Data)

	clock.Advance(30 * time.Second)
	r = c.Get(context.Background())
	assert.False(t, r.Stale)
	assert.Equal(t, int32(1), l.calls.Load())
}

func TestSWR_StaleServedWhileRevalidating(t *testing.T) {
	l := &countingLoader{value: []string{"old"}}
	c, clock := newTestSWR(l, nil)
	c.Get(context.Background())

	l.Set([]string{"new"}, nil)
	clock.Advance(2 * time.Minute)

	r := c.Get(context.Background())
	assert.True(t, r.Stale)
	assert.NoError(t, r.Err)
	assert.Equal(t, []string{"old"}, r.Data)

	c.Wait()
	r = c.Get(context.Background())
	assert.False(t, r.Stale)
	assert.Equal(t, []string{"new"}, r.Data)
	assert.Equal(t, int32(2), l.calls.Load())
}

func TestSWR_FailedRefreshKeepsStaleValue(t *testing.T) {
	l := &countingLoader{value: []string{"old"}}
	c, clock := newTestSWR(l, nil)
	c.Get(context.Background())

	l.Set(nil, errors.New("db down"))
	clock.Advance(2 * time.Minute)
	c.Get(context.Background())
	c.Wait()

	r := c.Get(context.Background())
	assert.Equal(t, []string{"old"}, r.Data)
	assert.True(t, r.Stale)
}

func TestSWR_TooOldFetchesSynchronously(t *testing.T) {
	l := &countingLoader{value: []string{"old"}}
	c, clock := newTestSWR(l, nil)
	c.Get(context.Background())

	l.Set([]string{"new"}, nil)
	clock.Advance(11 * time.Minute)

	r := c.Get(context.Background())
	assert.False(t, r.Stale)
	assert.Equal(t, []string{"new"}, r.Data)
}

func TestSWR_TooOldAndSourceDown(t *testing.T) {
	l := &countingLoader{value: []string{"old"}}
	c, clock := newTestSWR(l, nil)
	c.Get(context.Background())

	boom := errors.New("db down")
	l.Set(nil, boom)
	clock.Advance(11 * time.Minute)

	r := c.Get(context.Background())
	assert.ErrorIs(t, r.Err, boom)
	assert.True(t, r.Stale)
	assert.Equal(t, []string{"old"}, r.Data)
}

func TestSWR_ColdFailure(t *testing.T) {
	boom := errors.New("db down")
	l := &countingLoader{err: boom}
	c, _ := newTestSWR(l, nil)

	r := c.Get(context.Background())
	assert.True(t, r.Failed())
	assert.ErrorIs(t, r.Err, boom)
	assert.Nil(t, r.Data)
}

func TestSWR_InvalidateForcesReload(t *testing.T) {
	l := &countingLoader{value: []string{"a"}}
	c, _ := newTestSWR(l, nil)
	c.Get(context.Background())

	l.Set([]string{"b"}, nil)
	c.Invalidate(context.Background())

	r := c.Get(context.Background())
	assert.Equal(t, []string{"b"}, r.Data)
	assert.Equal(t, int32(2), l.calls.Load())
}

func TestSWR_InvalidateDuringLoadKeepsOldRowsOutOfSecondLevel(t *testing.T) {
	store := newMemStore()
	l := &countingLoader{value: []string{"old"}}
	started := make(chan struct{})
	release := make(chan struct{})
	var first atomic.Bool

	c := NewSWR(Options{Key: "nav", TTL: time.Minute, MaxStale: 10 * time.Minute, Store: store},
		func(ctx context.Context) ([]string, error) {
			rows, err := l.Load(ctx)
			if first.CompareAndSwap(false, true) {
				close(started)
				<-release
			}
			return rows, err
		})

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.Get(context.Background())
	}()
	<-started

	// строки изменены и кеш сброшен, пока первое чтение со старыми строками ещё не закончилось
	l.Set([]string{"new"}, nil)
	c.Invalidate(context.Background())
	close(release)
	<-done

	r := c.Get(context.Background())
	require.NoError(t, r.Err)
	assert.Equal(t, []string{"new"}, r.Data)
	assert.Equal(t, int32(2), l.calls.Load())

	var env envelope[[]string]
	require.NoError(t, store.GetJSON(context.Background(), "nav", &env))
	assert.Equal(t, []string{"new"}, env.Value)
}

func TestSWR_ConcurrentMissesShareOneLoad(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	c := NewSWR(Options{Key: "k", TTL: time.Minute}, func(context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 7, nil
	})

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Get(context.Background()).Data
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		assert.Equal(t, 7, v)
	}
}

func TestSWR_CancelledCallerDoesNotPoisonCache(t *testing.T) {
	l := &countingLoader{value: []string{"a"}}
	c, _ := newTestSWR(l, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := c.Get(ctx)
	require.NoError(t, r.Err)
	assert.Equal(t, []string{"a"}, r.Data)
}

func TestSWR_SecondLevelSharedBetweenInstances(t *testing.T) {
	store := newMemStore()
	first := &countingLoader{value: []string{"shared"}}
	a, clock := newTestSWR(first, store)
	a.Get(context.Background())

	second := &countingLoader{value: []string{"should not be read"}}
	b := NewSWR(Options{Key: "nav", TTL: time.Minute, MaxStale: 10 * time.Minute, Store: store}, second.Load)
	b.now = clock.Now

	r := b.Get(context.Background())
	assert.Equal(t, []string{"shared"}, r.Data)
	assert.Equal(t, int32(0), second.calls.Load())

	b.Invalidate(context.Background())
	r = b.Get(context.Background())
	assert.Equal(t, []string{"should not be read"}, r.Data)
	assert.Equal(t, int32(1), second.calls.Load())
}

func TestSWR_RefreshBypassesSecondLevel(t *testing.T) {
	store := newMemStore()
	l := &countingLoader{value: []string{"a"}}
	c, _ := newTestSWR(l, store)
	c.Get(context.Background())

	l.Set([]string{"b"}, nil)
	require.NoError(t, c.Refresh(context.Background()))

	r := c.Get(context.Background())
	assert.Equal(t, []string{"b"}, r.Data)
	assert.Equal(t, int32(2), l.calls.Load())
}
