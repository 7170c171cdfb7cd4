// Command bounce-record runs a session headless and writes every frame as a PNG.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gg"
	"github.com/schollz/progressbar/v3"

	"github.com/lixenwraith/bounce/config"
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/render/frames"
)

const (
	logDir      = "logs"
	logFileName = "bounce-record.log"
)

var (
	configFlag   = flag.String("config", "", "Path to YAML config file")
	framesFlag   = flag.Int("frames", 300, "Number of frames to record")
	outFlag      = flag.String("out", "frames", "Output directory")
	intervalFlag = flag.Duration("interval", time.Millisecond, "Frame interval while recording")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/bounce-record.log")
)

func main() {
	flag.Parse()

	logFile := core.SetupLogging(logDir, logFileName, *debugFlag)
	if logFile != nil {
		defer logFile.Close()
		gg.SetLogger(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bounce-record: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *framesFlag <= 0 {
		return fmt.Errorf("-frames must be positive, got %d", *framesFlag)
	}

	cfg, err := config.Resolve(*configFlag)
	if err != nil {
		return err
	}
	sessionCfg, err := cfg.SessionConfig()
	if err != nil {
		return err
	}
	session, err := engine.NewSession(sessionCfg)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer session.Close()

	bounces := 0
	session.RegisterEventHandler(engine.NewHandlerFunc(func(engine.Event) {
		bounces++
	}, engine.EventBounce))

	r, g, b := cfg.BallRGB()
	rec, err := frames.NewRecorder(*outFlag, sessionCfg.Bounds, r, g, b)
	if err != nil {
		return err
	}
	defer rec.Close()

	bar := progressbar.Default(int64(*framesFlag), "recording")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	limiter := frames.NewLimiter(rec, *framesFlag, cancel, func() { _ = bar.Add(1) })
	if err := session.Run(ctx, *intervalFlag, limiter); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	_ = bar.Finish()

	log.Printf("recorded %d frames to %s, %d bounces", rec.Frames(), *outFlag, bounces)
	fmt.Printf("%d frames written to %s\n", rec.Frames(), *outFlag)
	return nil
}
