// FILE: example/gnet/main.go
package main

import (
	"github.com/lixenwraith/hexlog"
	"github.com/lixenwraith/hexlog/compat"
	"github.com/panjf2000/gnet/v2"
)

// echoServer echoes traffic and hex dumps every frame
type echoServer struct {
	gnet.BuiltinEventEngine
	log *compat.GnetAdapter
}

func (es *echoServer) OnBoot(eng gnet.Engine) gnet.Action {
	es.log.Infof("echo server started")
	return gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, err := c.Next(-1)
	if err != nil {
		es.log.Errorf("read from %s failed: %v", c.RemoteAddr(), err)
		return gnet.Close
	}

	es.log.Debugf("%d bytes from %s", len(buf), c.RemoteAddr())
	es.log.Dump(buf)

	if _, err := c.Write(buf); err != nil {
		es.log.Warnf("echo to %s failed: %v", c.RemoteAddr(), err)
	}
	return gnet.None
}

func main() {
	logger, err := hexlog.NewBuilder().
		LevelString("error|warning|info|debug|flash").
		ShowTimestamp(true).
		ShowFunctionName(true).
		Build()
	if err != nil {
		panic(err)
	}

	gnetAdapter := compat.NewGnetAdapter(logger, compat.WithGnetHexLevel(hexlog.LevelFlash))

	err = gnet.Run(
		&echoServer{log: gnetAdapter},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
