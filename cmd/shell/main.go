package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"

	"github.com/kevmo314/go-pvcam/internal/cli"
	"github.com/kevmo314/go-pvcam/pkg/config"
)

func main() {
	fake := flag.Bool("fake", false, "use the in-memory camera instead of libpvcam")
	accessCheck := flag.Bool("access-check", false, "refuse writes to read-only parameters")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")

	flag.Parse()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "pvcam> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create readline: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	logger := config.LogConfig{Level: *logLevel}.Logger(rl.Stderr())
	lib, err := cli.Library(config.CameraConfig{Fake: *fake, AccessCheck: *accessCheck}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}
	defer lib.Uninit()

	s := &Shell{lib: lib, out: rl.Stdout()}
	defer s.closeCamera()

	s.printHelp()
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return
		}
		if !s.Exec(line) {
			return
		}
	}
}
