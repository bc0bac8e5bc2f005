package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/entanglelab/qorbit/audio"
	"github.com/entanglelab/qorbit/config"
	"github.com/entanglelab/qorbit/engine"
	"github.com/entanglelab/qorbit/event"
	"github.com/entanglelab/qorbit/input"
	"github.com/entanglelab/qorbit/render"
	"github.com/entanglelab/qorbit/scene"
	"github.com/entanglelab/qorbit/system"
)

var (
	configFlag = flag.String("config", "qorbit.toml", "Path to TOML config file")
	viewFlag   = flag.String("view", "", "Startup view: constellation or ghz")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/")
	noAudio    = flag.Bool("no-audio", false, "Disable the detection alarm tone")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *viewFlag != "" {
		cfg.View = *viewFlag
	}
	if cfg.View != "constellation" && cfg.View != "ghz" {
		fmt.Fprintf(os.Stderr, "unknown view %q\n", cfg.View)
		os.Exit(1)
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
	screen.EnableMouse()
	defer screen.Fini()

	// Panic recovery: restore the terminal before the stack trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nqorbit crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(screen, cfg); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "qorbit: %v\n", err)
		os.Exit(1)
	}
}

func run(screen tcell.Screen, cfg config.Config) error {
	width, height := screen.Size()

	// Both scenes persist so switching views keeps their state
	constellation := scene.NewConstellation(cfg.Constellation.Count, cfg.Constellation.Radius)
	ghz := scene.NewGHZRing(cfg.GHZ.Count, cfg.GHZ.Radius)

	startScene := constellation
	if cfg.View == "ghz" {
		startScene = ghz
	}

	ctx := engine.NewContext(startScene, engine.NewMonotonicTimeProvider(), uint64(time.Now().UnixNano()))
	ctx.Width = width
	ctx.Height = height
	ctx.RotationSpeed = cfg.RotationSpeed

	ctx.OnSwitchView = func(c *engine.Context) {
		if c.Scene == constellation {
			c.SwapScene(ghz)
		} else {
			c.SwapScene(constellation)
		}
		c.SetStatus("view: " + c.Scene.Name)
	}

	// Pipeline order: progress, drift, orbit, style, detect, edges
	detector := system.NewDetectorSystem()
	loop := engine.NewLoop(ctx)
	loop.AddSystem(system.NewExpansionSystem())
	loop.AddSystem(system.NewReleaseSystem())
	loop.AddSystem(system.NewOrbitSystem())
	loop.AddSystem(system.NewStylingSystem())
	loop.AddSystem(detector)
	loop.AddSystem(system.NewConnectionSystem())

	// Alarm tone on detection, skipped silently without audio output
	if cfg.Audio && !*noAudio {
		alarm, err := audio.NewAlarm()
		if err != nil {
			log.Printf("audio unavailable, continuing silent: %v", err)
		}
		detector.OnAlarm = alarm.Play
	}

	// Renderers in priority order
	status := render.NewStatusBarRenderer(ctx.Time)
	ctx.Status = status.SetMessage

	orchestrator := render.NewOrchestrator(screen, width, height)
	orchestrator.Register(render.NewEdgeRenderer(), render.PriorityEdges)
	orchestrator.Register(render.NewBodyRenderer(), render.PriorityBodies)
	orchestrator.Register(render.NewBeamRenderer(detector), render.PriorityEffects)
	orchestrator.Register(status, render.PriorityUI)
	orchestrator.Register(render.NewTooltipRenderer(), render.PriorityUI)

	handler := input.NewHandler(ctx.Events)
	handler.OnForceResize = func() {
		w, h := screen.Size()
		ctx.Events.Push(event.Event{Type: event.TypeResize, X: w, Y: h})
		screen.Sync()
	}

	// Input polling goroutine; the queue is the only shared state
	eventChan := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FrameRateHz))
	defer ticker.Stop()

	log.Printf("starting view=%s bodies=%d edges=%d", ctx.Scene.Name, ctx.Scene.Bodies.Count, len(ctx.Scene.Edges))

	for {
		select {
		case ev := <-eventChan:
			if !handler.HandleEvent(ev) {
				return nil
			}

		case <-quit:
			return nil

		case <-ticker.C:
			loop.Tick()
			if ctx.Width != orchestrator.Buffer().Width || ctx.Height != orchestrator.Buffer().Height {
				orchestrator.Resize(ctx.Width, ctx.Height)
			}
			orchestrator.RenderFrame(ctx)
		}
	}
}
