package main

import (
	"flag"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	Redis           redis.RedisConf
	Log             logx.LogConf
	OnceWorkingTime int    `json:",default=180"` // second
	SetExpireTime   int    `json:",default=540"` // second
	Pprof           string `json:",optional"`
}

var (
	configFile  = flag.String("f", "etc/engine.yaml", "the config file")
	c           Config
	RedisClient *redis.Redis
)

func initConfig() {
	flag.Parse()
	conf.MustLoad(*configFile, &c, conf.UseEnv())
	logx.MustSetup(c.Log)

	RedisClient = redis.MustNewRedis(c.Redis)
}
