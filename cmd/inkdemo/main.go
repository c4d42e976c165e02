// Command inkdemo renders freehand strokes from a JSON point file.
//
// In outline mode each stroke is turned into a pressure-sensitive outline.
// In calligraphy mode each stroke is fitted with Bezier segments and
// decorated with brush shapes. Output is PNG or SVG by extension.
//
//	inkdemo -in strokes.json -out strokes.png
//	inkdemo -in strokes.json -config brush.toml -mode calligraphy -out strokes.svg -watch
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/ink"
)

func main() {
	var (
		in      = flag.String("in", "", "input JSON point file (required)")
		config  = flag.String("config", "", "TOML or YAML config file")
		mode    = flag.String("mode", "", "outline or calligraphy (overrides config)")
		out     = flag.String("out", "ink.png", "output file, .png or .svg")
		watchFS = flag.Bool("watch", false, "re-render when the input or config changes")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	ink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	once := func() error {
		cfg, err := LoadConfig(*config)
		if err != nil {
			return err
		}
		if *mode != "" {
			cfg.Mode = *mode
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		return run(cfg, *in, *out)
	}

	if err := once(); err != nil {
		if !*watchFS {
			log.Fatal(err)
		}
		ink.Logger().Error("inkdemo: render failed", "err", err)
	}
	if !*watchFS {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ink.Logger().Info("inkdemo: watching for changes", "input", *in, "config", *config)
	if err := watch(ctx, []string{*in, *config}, once); err != nil {
		log.Fatal(err)
	}
}
