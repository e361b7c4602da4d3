package ratemodifier

import (
	"blend/core"
	"blend/internal/blend"
	"blend/pkg/fixed"
	"context"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/fox-one/pkg/logger"
)

// Clock returns the current time
type Clock func() time.Time

type entry struct {
	mu    sync.Mutex
	state *core.RateModifierState
}

type rateModifierStore struct {
	mu      sync.RWMutex
	entries map[string]*entry
	now     Clock
}

// New new reactive modifier store instance
//
// Each key is guarded by its own lock, so advances of different keys never
// wait on each other while advances of the same key are applied one at a time.
func New(clock Clock) core.IRateModifierStore {
	if clock == nil {
		clock = time.Now
	}

	return &rateModifierStore{
		entries: map[string]*entry{},
		now:     clock,
	}
}

// entry finds or creates the entry of poolID, a new entry starts at ts
func (s *rateModifierStore) entry(poolID string, cfg *core.InterestRateConfig, ts time.Time) *entry {
	s.mu.RLock()
	e, ok := s.entries[poolID]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[poolID]; ok {
		return e
	}

	e = &entry{
		state: &core.RateModifierState{
			PoolID:              poolID,
			CurrentModifier:     blend.InitialModifier(cfg),
			LastUpdateTimestamp: ts,
		},
	}
	s.entries[poolID] = e
	return e
}

func (s *rateModifierStore) GetOrCreate(ctx context.Context, poolID string, cfg *core.InterestRateConfig) *core.RateModifierState {
	e := s.entry(poolID, cfg, s.now())

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Clone()
}

func (s *rateModifierStore) Advance(ctx context.Context, poolID string, utilization *big.Int, cfg *core.InterestRateConfig, now time.Time) (*core.RateModifierState, error) {
	log := logger.FromContext(ctx).WithField("pool", poolID)

	if utilization == nil || utilization.Sign() < 0 || utilization.Cmp(fixed.Scalar7) > 0 {
		return nil, core.ErrInvalidUtilization
	}

	if r := blend.ValidateInterestRateConfig(cfg); !r.IsValid {
		log.WithField("issues", r.Issues).Warnln("advance: invalid rate config")
		return nil, core.ErrInvalidRateConfig
	}

	e := s.entry(poolID, cfg, now)

	e.mu.Lock()
	defer e.mu.Unlock()

	delta := now.Sub(e.state.LastUpdateTimestamp)
	if delta < 0 {
		log.Warnf("advance: clock moved backwards by %s", -delta)
		return nil, core.ErrClockRegression
	}

	next := blend.CalcNextModifier(e.state.CurrentModifier, utilization, cfg, int64(delta/time.Second))

	e.state = &core.RateModifierState{
		PoolID:              poolID,
		CurrentModifier:     next,
		LastUpdateTimestamp: now,
	}

	return e.state.Clone(), nil
}

func (s *rateModifierStore) Find(ctx context.Context, poolID string) (*core.RateModifierState, bool) {
	s.mu.RLock()
	e, ok := s.entries[poolID]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Clone(), true
}

func (s *rateModifierStore) List(ctx context.Context) []*core.RateModifierState {
	s.mu.RLock()
	entries := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	states := make([]*core.RateModifierState, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		states = append(states, e.state.Clone())
		e.mu.Unlock()
	}

	sort.Slice(states, func(i, j int) bool {
		return states[i].PoolID < states[j].PoolID
	})

	return states
}

// Reset drops every tracked key
func (s *rateModifierStore) Reset() {
	s.mu.Lock()
	s.entries = map[string]*entry{}
	s.mu.Unlock()
}
