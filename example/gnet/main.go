// FILE: example/gnet/main.go
package main

import (
	"os"

	log "github.com/lixenwraith/simplelog"
	"github.com/lixenwraith/simplelog/compat"
	"github.com/panjf2000/gnet/v2"
	"go.uber.org/zap"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
	zl *zap.Logger
}

func (es *echoServer) OnBoot(eng gnet.Engine) gnet.Action {
	es.zl.Info("echo server booted")
	return gnet.None
}

func (es *echoServer) OnOpen(c gnet.Conn) ([]byte, gnet.Action) {
	es.zl.Debug("connection opened", zap.String("remote", c.RemoteAddr().String()))
	return nil, gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	_, _ = c.Write(buf)
	return gnet.None
}

func main() {
	logger, err := log.NewBuilder().
		Name("gnet").
		Directory("./gnet_logs").
		LevelString("debug").
		Format("json").
		EnableConsole(true).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	builder := compat.NewBuilder().WithLogger(logger)

	gnetAdapter, err := builder.BuildGnet(compat.WithFatalHandler(func(msg string) {
		_ = logger.Shutdown()
		os.Exit(1)
	}))
	if err != nil {
		panic(err)
	}

	// Handler events go through zap under a "server" custom category
	zl, err := builder.BuildZap()
	if err != nil {
		panic(err)
	}

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{zl: zl.Named("server")},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		logger.LogError(err, log.LevelError, log.CategoryNetwork, "")
	}
}
