// SPDX-License-Identifier: MIT

package congruence

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Memo keys, one per lazily computed field.
const (
	keyPrincipals   = "principals"
	keyUniverse     = "universe"
	keyTables       = "tables"
	keyJoinIrr      = "join-irreducibles"
	keyMeetIrr      = "meet-irreducibles"
	keyHasse        = "hasse"
	keyDistributive = "distributive"
	keyModular      = "modular"
)

// arena stores filled fields by key. Fields are written once and never
// mutated afterwards.
type arena struct {
	mu     sync.Mutex
	values map[string]any
	flight singleflight.Group
}

func (a *arena) load(key string) (any, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	v, ok := a.values[key]

	return v, ok
}

func (a *arena) store(key string, v any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.values == nil {
		a.values = make(map[string]any)
	}
	a.values[key] = v
}

// sized is implemented by cached values that report an element count.
type sized interface{ Len() int }

// fill returns the cached value for key, computing it on first use.
// Concurrent callers for the same key wait for one computation. Errors are
// returned to every waiter and leave the field empty.
//
// compute must not fill the same key, directly or indirectly.
func fill[T any](l *Lattice, key string, compute func() (T, error)) (T, error) {
	if v, ok := l.memo.load(key); ok {
		return v.(T), nil
	}
	v, err, _ := l.memo.flight.Do(key, func() (any, error) {
		if v, ok := l.memo.load(key); ok {
			return v, nil
		}
		start := time.Now()
		v, err := compute()
		if err != nil {
			l.log.Debug("congruence: field failed", "field", key, "err", err)
			return nil, err
		}
		l.memo.store(key, v)
		attrs := []any{"field", key, "elapsed", time.Since(start)}
		if s, ok := any(v).(sized); ok {
			attrs = append(attrs, "size", s.Len())
		}
		l.log.Debug("congruence: field computed", attrs...)

		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v.(T), nil
}
