package main

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/lixenwraith/hexlog"
	"github.com/lixenwraith/hexlog/osal"
)

// Dump continuously while the level bitmask and prefix options change underneath
func main() {
	var count atomic.Int64

	osal.SetStartTime()
	hexlog.SetOutput(os.Stderr)

	page := make([]byte, 48)
	for i := range page {
		page[i] = byte(i * 5)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			hexlog.HexData(hexlog.LevelFlash, page)
			hexlog.Printf(hexlog.LevelInfo, "iteration %d", i)
			count.Add(1)
			osal.Delay(1)
		}
	}()

	masks := []hexlog.Level{
		hexlog.LevelDefault,
		hexlog.LevelDefault | hexlog.LevelFlash,
		hexlog.LevelError,
		hexlog.LevelMax,
	}
	for i := 0; i < 20; i++ {
		hexlog.EnableLevels(masks[i%len(masks)])
		err := hexlog.ApplyConfigString(
			fmt.Sprintf("show_timestamp=%t", i%2 == 0),
			fmt.Sprintf("levels=0x%X", uint32(masks[i%len(masks)])),
		)
		if err != nil {
			fmt.Printf("Reconfigure error: %v\n", err)
		}
		osal.Delay(10)
	}

	<-done
	fmt.Printf("Iterations: %d, elapsed %d ms\n", count.Load(), osal.GetRunningTime())
	fmt.Printf("Lines written: %d\n", hexlog.Default().Stats().LinesWritten)
}
