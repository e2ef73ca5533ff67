package main

import (
	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type AssessMessage struct {
	message.AssessMessageKey
	message.AssessMessageValue
}

// NewAssessPusher adds assessments to the result set of their hint request.
// Set members are idempotent, so a failed batch is simply retried whole.
func NewAssessPusher(RedisClient *redis.Redis, expire int) *pusher.Pusher[AssessMessage] {
	return pusher.NewPusher(pusher.WithPushLogic(func(assessMessages ...AssessMessage) error {
		for _, assessMessage := range assessMessages {
			keyStr := assessMessage.AssessMessageKey.String()

			if _, err := RedisClient.Sadd(keyStr, assessMessage.AssessMessageValue.String()); err != nil {
				return err
			}

			if err := RedisClient.Expire(keyStr, expire); err != nil {
				return err
			}
		}

		return nil
	}))
}
