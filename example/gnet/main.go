package main

import (
	"github.com/logexpress/logx"
	"github.com/logexpress/logx/compat"
	"github.com/panjf2000/gnet/v2"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	logger, err := logx.NewBuilder().
		Directory("/var/log/gnet").
		LevelString("debug").
		Build()
	if err != nil {
		panic(err)
	}

	gnetAdapter := compat.NewGnetAdapter(logger)

	// Configure the gnet server with the adapter
	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
	)
	if err != nil {
		logger.ErrorStack(err)
	}
}
