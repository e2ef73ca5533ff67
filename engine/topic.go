package main

import (
	"time"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// GetFreeTopic blocks until it owns a partition that has work queued.
func GetFreeTopic(RedisClient *redis.Redis) (topic message.RedisPartition, err error) {
	for {
		for _, t := range message.RedisPartitions {
			length, err := RedisClient.Llen(t.ListKey())
			if err != nil {
				return -1, err
			}

			if length == 0 {
				continue
			}

			owned, err := RedisClient.SetnxEx(t.OwnerKey(), string(message.NewTimeStamp(time.Now())), c.OnceWorkingTime)
			if err != nil {
				return -1, err
			}

			if owned {
				return t, nil
			}
		}

		time.Sleep(time.Second)
	}
}
