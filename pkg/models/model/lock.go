package model

import (
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	lockExpireSeconds = 10
	lockRetryInterval = time.Second / 20
	lockMaxRetries    = 200
)

var ErrLockTimeout = errors.New("lock timeout")

// RedisLock guards one painting, or one partition, across service
// instances.
type RedisLock struct {
	*redis.RedisLock
}

func NewLock(rds *redis.Redis, LockName string) *RedisLock {
	l := &RedisLock{
		RedisLock: redis.NewRedisLock(rds, LockName),
	}
	l.SetExpire(lockExpireSeconds)
	return l
}

// Do runs f while holding the lock. The lock is released even when f fails.
func (l *RedisLock) Do(f func() error) (err error) {
	if err = l.Lock(); err != nil {
		return err
	}

	defer func() {
		if unlockErr := l.UnLock(); err == nil {
			err = unlockErr
		}
	}()

	return f()
}

func (l *RedisLock) Lock() error {
	for range lockMaxRetries {
		acquire, err := l.Acquire()
		if err != nil {
			return err
		}

		if acquire {
			return nil
		}

		time.Sleep(lockRetryInterval)
	}

	return ErrLockTimeout
}

func (l *RedisLock) UnLock() error {
	_, err := l.Release()
	return err
}
