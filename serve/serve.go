package main

import (
	"flag"
	"fmt"

	"github.com/HuXin0817/painting/pkg/pprof"
	"github.com/HuXin0817/painting/serve/internal/config"
	"github.com/HuXin0817/painting/serve/internal/handler"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
)

var configFile = flag.String("f", "etc/serve.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c, conf.UseEnv())

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	defer ctx.Stop()

	httpx.SetErrorHandlerCtx(handler.ErrorHandler)
	handler.RegisterHandlers(server, ctx)
	pprof.Start(c.Pprof)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
