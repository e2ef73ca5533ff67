package main

import (
	"time"

	"github.com/HuXin0817/painting/pkg/pprof"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/proc"
)

func main() {
	initConfig()
	pprof.Start(c.Pprof)

	Pusher := NewAssessPusher(RedisClient, c.SetExpireTime)
	Pusher.Start()
	proc.AddShutdownListener(Pusher.Stop)

	for {
		NowTopic, err := GetFreeTopic(RedisClient)
		if err != nil {
			logx.Must(err)
		}

		if err = OnceIntervalWorking(NowTopic, Pusher); err != nil {
			logx.Errorf("partition %d: %v", NowTopic, err)
		}

		time.Sleep(time.Second)
	}
}
