package svc

import (
	"context"
	"errors"
	"sync"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

var ErrPaintingNotFound = errors.New("painting not found")

// PaintingStore keeps surfaces between requests.
type PaintingStore interface {
	Load(ctx context.Context, uid message.PaintingUid) (*painting.Surface, error)
	Save(ctx context.Context, uid message.PaintingUid, s *painting.Surface) error
	Delete(ctx context.Context, uid message.PaintingUid) error
}

type RedisStore struct {
	rds    *redis.Redis
	expire int
}

func NewRedisStore(rds *redis.Redis, expire int) *RedisStore {
	return &RedisStore{rds: rds, expire: expire}
}

func (r *RedisStore) Load(ctx context.Context, uid message.PaintingUid) (*painting.Surface, error) {
	str, err := r.rds.GetCtx(ctx, uid.StateKey())
	if err != nil {
		return nil, err
	}

	if str == "" {
		return nil, ErrPaintingNotFound
	}

	m, err := message.NewStateMessage(str)
	if err != nil {
		return nil, err
	}

	return painting.FromState(m.State)
}

func (r *RedisStore) Save(ctx context.Context, uid message.PaintingUid, s *painting.Surface) error {
	m := message.NewStateMessageFromSurface(uid, s)
	return r.rds.SetexCtx(ctx, uid.StateKey(), m.String(), r.expire)
}

func (r *RedisStore) Delete(ctx context.Context, uid message.PaintingUid) error {
	_, err := r.rds.DelCtx(ctx, uid.StateKey())
	return err
}

// MemoryStore holds surfaces of a single serve instance.
type MemoryStore struct {
	mu        sync.Mutex
	paintings map[message.PaintingUid]painting.State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{paintings: make(map[message.PaintingUid]painting.State)}
}

func (m *MemoryStore) Load(_ context.Context, uid message.PaintingUid) (*painting.Surface, error) {
	m.mu.Lock()
	st, ok := m.paintings[uid]
	m.mu.Unlock()

	if !ok {
		return nil, ErrPaintingNotFound
	}
	return painting.FromState(st)
}

func (m *MemoryStore) Save(_ context.Context, uid message.PaintingUid, s *painting.Surface) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.paintings[uid] = s.State()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, uid message.PaintingUid) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.paintings, uid)
	return nil
}
