package blacklist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nglume/nglume/pkg/payload"
	"github.com/nglume/nglume/pkg/redis"
)

// DefaultKeyClaim identifies tokens in the store when no claim is configured.
const DefaultKeyClaim = payload.ClaimTokenID

const keyPrefix = "blacklist"

// Store records revoked and consumed tokens, keyed by a token-identifying
// claim, with TTL equal to the token's remaining lifetime. Entries
// self-expire; the store enforces TTL atomically with the write.
type Store interface {
	// Add blacklists the payload for the remainder of its lifetime. A
	// payload whose expiry has already passed is a no-op.
	Add(ctx context.Context, p *payload.Payload) error
	// Check reports whether the payload is blacklisted.
	Check(ctx context.Context, p *payload.Payload) (bool, error)
	// Consume atomically removes the payload's entry, reporting whether it
	// was present. At most one concurrent caller observes true.
	Consume(ctx context.Context, p *payload.Payload) (bool, error)
}

type storeImpl struct {
	rd       redis.IRedis
	keyClaim string
	clock    func() time.Time
}

// New builds a Store on the given Redis connection. Empty keyClaim falls
// back to DefaultKeyClaim; nil clock falls back to time.Now.
func New(rd redis.IRedis, keyClaim string, clock func() time.Time) Store {
	if keyClaim == "" {
		keyClaim = DefaultKeyClaim
	}
	if clock == nil {
		clock = time.Now
	}
	return &storeImpl{rd: rd, keyClaim: keyClaim, clock: clock}
}

func (s *storeImpl) Add(ctx context.Context, p *payload.Payload) error {
	exp, err := p.Int64(payload.ClaimExpiry)
	if err != nil {
		return err
	}

	ttl := time.Duration(exp-s.clock().Unix()) * time.Second
	if ttl <= 0 {
		// Nothing to blacklist: the token already expired naturally.
		return nil
	}

	key, err := s.key(p)
	if err != nil {
		return err
	}

	if err := s.rd.Set(ctx, key, "true", ttl); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (s *storeImpl) Check(ctx context.Context, p *payload.Payload) (bool, error) {
	key, err := s.key(p)
	if err != nil {
		return false, err
	}

	found, err := s.rd.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return found, nil
}

func (s *storeImpl) Consume(ctx context.Context, p *payload.Payload) (bool, error) {
	key, err := s.key(p)
	if err != nil {
		return false, err
	}

	_, err = s.rd.GetDel(ctx, key)
	if errors.Is(err, redis.ErrNil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to consume token: %w", err)
	}
	return true, nil
}

func (s *storeImpl) key(p *payload.Payload) (string, error) {
	value, err := p.String(s.keyClaim)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s:%s", keyPrefix, s.keyClaim, value), nil
}
