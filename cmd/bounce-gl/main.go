// Command bounce-gl plays the game in an OpenGL window.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/lixenwraith/bounce/audio"
	"github.com/lixenwraith/bounce/config"
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/render/opengl"
)

const (
	logDir      = "logs"
	logFileName = "bounce-gl.log"
	windowTitle = "bounce"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/bounce-gl.log")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	if logFile := core.SetupLogging(logDir, logFileName, *debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bounce-gl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
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

	if cfg.Audio.Enabled && !*muteFlag {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			session.RegisterEventHandler(sm.Handler())
			defer sm.Cleanup()
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	// One window pixel per world unit
	window, err := glfw.CreateWindow(int(sessionCfg.Bounds.Width), int(sessionCfg.Bounds.Height), windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	r, g, b := cfg.BallRGB()
	renderer, err := opengl.NewRenderer(sessionCfg.Bounds, r, g, b)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	fw, fh := window.GetFramebufferSize()
	renderer.Resize(fw, fh)
	opengl.NewMouseAdapter(window, session, renderer)

	// Step on the configured cadence, independent of the display refresh rate
	next := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()

		if now := time.Now(); !now.Before(next) {
			if err := session.Frame(renderer); err != nil {
				return err
			}
			window.SwapBuffers()
			next = now.Add(cfg.FrameInterval)
		} else {
			time.Sleep(next.Sub(now))
		}
	}

	log.Printf("window closed, score %d", session.Score())
	return nil
}
