package hexlog

import (
	"io"
	"testing"

	"github.com/lixenwraith/hexlog/osal"
)

func createBenchLogger(b *testing.B, overrides ...string) *Logger {
	logger := NewLogger()
	logger.SetShim(osal.New(osal.WithOutput(io.Discard)))
	logger.SetOutput(io.Discard)
	if len(overrides) > 0 {
		if err := logger.ApplyConfigString(overrides...); err != nil {
			b.Fatal(err)
		}
	}
	return logger
}

// BenchmarkPrintf benchmarks a formatted line with the full prefix
func BenchmarkPrintf(b *testing.B) {
	logger := createBenchLogger(b, "show_timestamp=true", "show_function_name=true")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Printf(LevelInfo, "benchmark message %d", i)
	}
}

// BenchmarkPrintfFiltered benchmarks the cost of a filtered call
func BenchmarkPrintfFiltered(b *testing.B) {
	logger := createBenchLogger(b, "levels=error")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Printf(LevelDebug, "filtered %d", i)
	}
}

// BenchmarkInfo benchmarks the space-joined helper
func BenchmarkInfo(b *testing.B) {
	logger := createBenchLogger(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", i, "key", "value")
	}
}

// BenchmarkHexData benchmarks a 256 byte dump
func BenchmarkHexData(b *testing.B) {
	logger := createBenchLogger(b, "levels=flash")
	page := make([]byte, 256)
	for i := range page {
		page[i] = byte(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.HexData(LevelFlash, page)
	}
}

// BenchmarkConcurrentPrintf benchmarks contention on the line buffer
func BenchmarkConcurrentPrintf(b *testing.B) {
	logger := createBenchLogger(b)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			logger.Printf(LevelInfo, "parallel %d", i)
			i++
		}
	})
}
