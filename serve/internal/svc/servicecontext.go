package svc

import (
	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/model"
	"github.com/HuXin0817/painting/serve/internal/config"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type ServiceContext struct {
	Config      config.Config
	RedisClient *redis.Redis
	Store       PaintingStore
	Lock        func(uid message.PaintingUid) Locker
	Recorder    Recorder
	Hints       HintQueue
}

func NewServiceContext(c config.Config) *ServiceContext {
	svcCtx := &ServiceContext{Config: c}

	if c.Redis.Host == "" {
		logx.Info("no redis host configured, paintings are kept in memory")
		locks := NewMemoryLocks()
		svcCtx.Store = NewMemoryStore()
		svcCtx.Lock = locks.Lock
		svcCtx.Hints = NewMemoryHintQueue()
	} else {
		svcCtx.RedisClient = redis.MustNewRedis(c.Redis)
		svcCtx.Store = NewRedisStore(svcCtx.RedisClient, c.StateExpire)
		svcCtx.Lock = func(uid message.PaintingUid) Locker {
			return model.NewLock(svcCtx.RedisClient, uid.LockName())
		}
		svcCtx.Hints = NewRedisHintQueue(svcCtx.RedisClient, c.StateExpire)
	}

	if c.MongoConf.Url == "" {
		svcCtx.Recorder = LogRecorder{}
	} else {
		svcCtx.Recorder = NewMongoRecorder(c.MongoConf.Url, c.MongoConf.DataBaseName)
	}

	return svcCtx
}

func (s *ServiceContext) Stop() {
	s.Hints.Stop()
	s.Recorder.Stop()
}
