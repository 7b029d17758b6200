package hexlog

import (
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleWriter(t *testing.T) {
	assert.Same(t, os.Stdout, consoleWriter("stdout"))
	assert.Same(t, os.Stderr, consoleWriter("stderr"))
	assert.Equal(t, io.Discard, consoleWriter("discard"))
	assert.Same(t, os.Stdout, consoleWriter(""))
}

// TestStatsConcurrent verifies counters stay exact under concurrent callers
func TestStatsConcurrent(t *testing.T) {
	h := createTestLogger(t, "levels=max")

	const workers, perWorker = 8, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				h.logger.Printf(LevelInfo, "line %d", i)
				h.logger.HexData(LevelFlash, []byte{byte(i)})
			}
		}()
	}
	wg.Wait()

	stats := h.logger.Stats()
	assert.Equal(t, uint64(2*workers*perWorker), stats.LinesWritten)
	assert.Equal(t, uint64(workers*perWorker), stats.HexDumps)
	assert.Zero(t, stats.WriteErrors)
	assert.Len(t, h.lines(), 2*workers*perWorker)
}
