package svc

import (
	"context"
	"sync"

	"github.com/HuXin0817/painting/pkg/assess"
	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/model"
	"github.com/HuXin0817/painting/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// HintQueue hands candidate placements to workers and collects what they
// found.
type HintQueue interface {
	Enqueue(ctx context.Context, messages ...message.HintMessage) error
	Assessments(ctx context.Context, key message.AssessMessageKey) ([]string, error)
	Stop()
}

// RedisHintQueue spreads hint messages over the Redis partitions read by
// the engine.
type RedisHintQueue struct {
	rds             *redis.Redis
	expire          int
	PartitionPusher map[message.RedisPartition]*pusher.Pusher[string]
}

func NewRedisHintQueue(rds *redis.Redis, expire int) *RedisHintQueue {
	q := &RedisHintQueue{
		rds:             rds,
		expire:          expire,
		PartitionPusher: make(map[message.RedisPartition]*pusher.Pusher[string]),
	}

	for _, redisPartition := range message.RedisPartitions {
		partitionLock := model.NewLock(rds, redisPartition.LockName())

		q.PartitionPusher[redisPartition] = pusher.NewPusher(pusher.WithPushLogic(func(pushMessages ...string) error {
			return partitionLock.Do(func() error {
				var messages []any
				for _, m := range pushMessages {
					messages = append(messages, m)
				}

				if _, err := rds.Lpush(redisPartition.ListKey(), messages...); err != nil {
					return err
				}

				return rds.Expire(redisPartition.ListKey(), expire)
			})
		}))

		q.PartitionPusher[redisPartition].Start()
	}

	return q
}

// topicMessageList assigns each message to the currently shortest
// partition.
func (q *RedisHintQueue) topicMessageList(ctx context.Context, messages []string) (map[message.RedisPartition][]string, error) {
	topicListLen := make(map[message.RedisPartition]int)
	for _, t := range message.RedisPartitions {
		l, err := q.rds.LlenCtx(ctx, t.ListKey())
		if err != nil {
			return nil, err
		}
		topicListLen[t] = l + q.PartitionPusher[t].Len()
	}

	return BalancePartitions(topicListLen, messages), nil
}

func BalancePartitions(topicListLen map[message.RedisPartition]int, messages []string) (topicMessageList map[message.RedisPartition][]string) {
	topicMessageList = make(map[message.RedisPartition][]string)
	for _, m := range messages {
		minTopic := message.RedisPartition(-1)
		minLen := 0
		for _, t := range message.RedisPartitions {
			if length := topicListLen[t]; minTopic == -1 || length < minLen {
				minLen = length
				minTopic = t
			}
		}

		topicListLen[minTopic]++
		topicMessageList[minTopic] = append(topicMessageList[minTopic], m)
	}

	return
}

func (q *RedisHintQueue) Enqueue(ctx context.Context, hintMessages ...message.HintMessage) error {
	messages := make([]string, 0, len(hintMessages))
	for _, m := range hintMessages {
		messages = append(messages, m.String())
	}

	topicMessageList, err := q.topicMessageList(ctx, messages)
	if err != nil {
		return err
	}

	for part, mess := range topicMessageList {
		q.PartitionPusher[part].AddMessages(mess...)
	}

	return nil
}

func (q *RedisHintQueue) Assessments(ctx context.Context, key message.AssessMessageKey) ([]string, error) {
	return q.rds.SmembersCtx(ctx, key.String())
}

func (q *RedisHintQueue) Stop() {
	for _, p := range q.PartitionPusher {
		p.Stop()
	}
}

// MemoryHintQueue assesses hint messages in process as they arrive.
type MemoryHintQueue struct {
	mu      sync.Mutex
	results map[message.AssessMessageKey]map[string]struct{}
}

func NewMemoryHintQueue() *MemoryHintQueue {
	return &MemoryHintQueue{results: make(map[message.AssessMessageKey]map[string]struct{})}
}

func (q *MemoryHintQueue) Enqueue(_ context.Context, messages ...message.HintMessage) error {
	for _, m := range messages {
		gain, err := assess.Gain(m.State, m.Kind, m.Point)
		if err != nil {
			continue
		}

		v := message.AssessMessageValue{Point: m.Point, Gain: gain}

		q.mu.Lock()
		key := m.AssessMessageKey()
		if q.results[key] == nil {
			q.results[key] = make(map[string]struct{})
		}
		q.results[key][v.String()] = struct{}{}
		q.mu.Unlock()
	}

	return nil
}

func (q *MemoryHintQueue) Assessments(_ context.Context, key message.AssessMessageKey) (members []string, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for m := range q.results[key] {
		members = append(members, m)
	}
	return
}

func (q *MemoryHintQueue) Stop() {}
