// Command hexdump prints a file or stdin through the hexlog formatter.
//
// Usage:
//
//	hexdump [-config file] [-levels mask] [-timestamp] [-function] [file]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/hexlog"
	"github.com/lixenwraith/hexlog/osal"
)

func main() {
	configPath := flag.String("config", "", "TOML file with a [hexlog] table")
	levels := flag.String("levels", "", "level bitmask override, e.g. 'error|flash' or 0x10F")
	timestamp := flag.Bool("timestamp", false, "prefix lines with elapsed milliseconds")
	function := flag.Bool("function", false, "prefix lines with the caller name")
	flag.Parse()

	if err := run(*configPath, *levels, *timestamp, *function, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "hexdump: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, levels string, timestamp, function bool, args []string) error {
	osal.SetStartTime()

	cfg := hexlog.DefaultConfig()
	if configPath != "" {
		loaded, err := hexlog.NewConfigFromFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags only widen what the config enables
	cfg.ShowTimestamp = cfg.ShowTimestamp || timestamp
	cfg.ShowFunctionName = cfg.ShowFunctionName || function
	mask := hexlog.Level(cfg.Levels)
	if levels != "" {
		parsed, err := hexlog.ParseLevel(levels)
		if err != nil {
			return err
		}
		mask = parsed
	}
	mask |= hexlog.LevelFlash

	logger, err := hexlog.NewBuilder().
		Levels(mask).
		ShowTimestamp(cfg.ShowTimestamp).
		ShowFunctionName(cfg.ShowFunctionName).
		MessageBufferSize(cfg.MessageBufferSize).
		Sanitization(cfg.Sanitization).
		ConsoleTarget(cfg.ConsoleTarget).
		InternalErrorsToStderr(cfg.InternalErrorsToStderr).
		Build()
	if err != nil {
		return err
	}

	var data []byte
	name := "stdin"
	if len(args) > 0 {
		name = args[0]
		data, err = os.ReadFile(name)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	logger.PrintfFunc(hexlog.LevelInfo, "hexdump", "%s: %d bytes", name, len(data))
	if len(data) > 0 {
		logger.HexDataFunc(hexlog.LevelFlash, "hexdump", data)
	}

	if stats := logger.Stats(); stats.WriteErrors > 0 {
		return fmt.Errorf("%d write errors", stats.WriteErrors)
	}
	return nil
}
