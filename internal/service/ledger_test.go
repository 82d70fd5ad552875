package service

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/catalog-server/internal/model"
)

// memLedger is an in-memory RefreshTokenStore with the same single-record,
// compare-and-swap semantics as the postgres ledger.
type memLedger struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]model.RefreshToken
	now    func() time.Time
}

func newMemLedger() *memLedger {
	return &memLedger{byUser: map[uuid.UUID]model.RefreshToken{}, now: time.Now}
}

func (l *memLedger) Save(_ context.Context, userID uuid.UUID, tokenHash []byte, expiresAt time.Time) (model.RefreshToken, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rt := model.RefreshToken{ID: uuid.New(), UserID: userID, TokenHash: tokenHash, CreatedAt: l.now(), ExpiresAt: expiresAt}
	l.byUser[userID] = rt
	return rt, nil
}

func (l *memLedger) Rotate(_ context.Context, userID uuid.UUID, oldHash, newHash []byte, expiresAt time.Time) (model.RefreshToken, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rt, ok := l.byUser[userID]
	if !ok || !bytes.Equal(rt.TokenHash, oldHash) || !rt.ExpiresAt.After(l.now()) {
		return model.RefreshToken{}, model.ErrNotFound
	}
	rt.TokenHash = newHash
	rt.ExpiresAt = expiresAt
	rt.CreatedAt = l.now()
	l.byUser[userID] = rt
	return rt, nil
}

func (l *memLedger) Exists(_ context.Context, tokenHash []byte) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, rt := range l.byUser {
		if bytes.Equal(rt.TokenHash, tokenHash) && rt.ExpiresAt.After(l.now()) {
			return true, nil
		}
	}
	return false, nil
}

func (l *memLedger) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.byUser, userID)
	return nil
}

func (l *memLedger) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var n int64
	for id, rt := range l.byUser {
		if rt.ExpiresAt.Before(before) {
			delete(l.byUser, id)
			n++
		}
	}
	return n, nil
}

func (l *memLedger) record(userID uuid.UUID) (model.RefreshToken, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rt, ok := l.byUser[userID]
	return rt, ok
}
