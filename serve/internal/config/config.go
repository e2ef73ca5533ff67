package config

import (
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	// An empty Redis host keeps paintings in process memory.
	Redis     redis.RedisConf `json:",optional"`
	MongoConf struct {
		Url          string `json:",optional"`
		DataBaseName string `json:",default=painting"`
	} `json:",optional"`
	MaxSurfaceSize int    `json:",default=64"`
	StateExpire    int    `json:",default=3600"`
	Pprof          string `json:",optional"`
}
