package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce/audio"
	"github.com/lixenwraith/bounce/config"
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/physics"
	"github.com/lixenwraith/bounce/render"
)

const (
	logDir      = "logs"
	logFileName = "bounce.log"
)

var (
	configFlag    = flag.String("config", "", "Path to YAML config file")
	debugFlag     = flag.Bool("debug", false, "Write debug log to logs/bounce.log")
	collisionFlag = flag.String("collision", "", "Collision mode: discrete, swept")
	muteFlag      = flag.Bool("mute", false, "Disable sound")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := core.SetupLogging(logDir, logFileName, *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Resolve(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *collisionFlag != "" {
		if _, err := physics.ParseMode(*collisionFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to parse -collision: %v\n", err)
			os.Exit(1)
		}
		cfg.Collision = *collisionFlag
	}

	sessionCfg, err := cfg.SessionConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid session config: %v\n", err)
		os.Exit(1)
	}
	session, err := engine.NewSession(sessionCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create session: %v\n", err)
		os.Exit(1)
	}
	defer session.Close()

	if cfg.Audio.Enabled && !*muteFlag {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			session.RegisterEventHandler(sm.Handler())
			defer sm.Cleanup()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, cfg.BallColor())

	eventChan := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	log.Printf("session started: arena %vx%v, mode %v", sessionCfg.Bounds.Width, sessionCfg.Bounds.Height, sessionCfg.Mode)

	frameTicker := time.NewTicker(cfg.FrameInterval)
	defer frameTicker.Stop()

	var lastButtons tcell.ButtonMask
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(ev, session) {
					log.Printf("quit at frame %d, score %d", session.Snapshot().Frame, session.Score())
					return
				}

			case *tcell.EventMouse:
				buttons := ev.Buttons()
				// Act on the press edge only, motion with a held button repeats the mask
				if buttons&tcell.Button1 != 0 && lastButtons&tcell.Button1 == 0 {
					if p, ok := renderer.PointerToWorld(ev.Position()); ok {
						if session.Click(p) {
							log.Printf("hit at (%.1f, %.1f), score %d", p.X, p.Y, session.Score())
						}
					}
				}
				lastButtons = buttons

			case *tcell.EventResize:
				w, h := ev.Size()
				renderer.Resize(w, h)
				screen.Sync()
			}

		case <-frameTicker.C:
			if err := session.Frame(renderer); err != nil {
				log.Printf("render failed: %v", err)
				return
			}
		}
	}
}

// handleKey applies a key press, returns false to quit
func handleKey(ev *tcell.EventKey, session *engine.Session) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'p', 'P', ' ':
			session.TogglePause()
		}
	}
	return true
}
