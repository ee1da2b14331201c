package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/jcorbin/m3c/internal/flushio"
	"github.com/jcorbin/m3c/internal/logio"
)

func main() {
	ctx := context.Background()

	var (
		configFile string
		trace      bool
		quiet      bool
		write      bool
	)
	flag.StringVar(&configFile, "config", "", "read configuration from `file` instead of "+defaultConfigFile)
	flag.BoolVar(&trace, "trace", false, "enable trace logging of the codec")
	flag.BoolVar(&quiet, "q", false, "only log warnings and errors")
	flag.BoolVar(&write, "w", false, "fmt: rewrite files in place")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: m3c [flags] <%v> [file ...]\n", strings.Join(commandNames(), "|"))
		flag.PrintDefaults()
	}
	flag.Parse()

	var log logio.Logger
	log.SetOutput(os.Stderr)

	stdout := flushio.NewWriteFlusher(os.Stdout)
	atexit.Register(flushHandler(&log, stdout, os.Exit))

	cfg, err := loadConfig(configFile)
	if err != nil {
		log.Errorf("%v", err)
		atexit.Exit(2)
	}
	log.SetColor(cfg.colorFor(os.Stderr))
	if quiet {
		log.Mute("INFO")
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		atexit.Exit(2)
	}

	cli := app{
		cfg:    cfg,
		log:    &log,
		stdin:  os.Stdin,
		stdout: stdout,
		write:  write,
		trace:  trace,
		color:  cfg.colorFor(os.Stdout),
	}
	log.ErrorIf(cli.run(ctx, args[0], args[1:]))
	atexit.Exit(log.ExitCode())
}

// flushHandler returns an exit handler flushing out. Handlers run after the
// exit code is chosen, so a failed flush exits again with the logger's code.
func flushHandler(log *logio.Logger, out flushio.WriteFlusher, exit func(code int)) func() {
	return func() {
		if err := out.Flush(); err != nil {
			log.Errorf("%v", err)
			exit(log.ExitCode())
		}
	}
}
