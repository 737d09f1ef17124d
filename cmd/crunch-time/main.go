package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/crunch-time/audio"
	"github.com/lixenwraith/crunch-time/config"
	"github.com/lixenwraith/crunch-time/core"
	"github.com/lixenwraith/crunch-time/engine"
	"github.com/lixenwraith/crunch-time/event"
	"github.com/lixenwraith/crunch-time/metrics"
	"github.com/lixenwraith/crunch-time/network"
	"github.com/lixenwraith/crunch-time/parameter"
	"github.com/lixenwraith/crunch-time/render"
	"github.com/lixenwraith/crunch-time/scene"
	"github.com/lixenwraith/crunch-time/scoreboard"
	"github.com/lixenwraith/crunch-time/status"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyFlags(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		logrus.WithError(err).Error("crunch-time exited with error")
		fmt.Fprintf(os.Stderr, "crunch-time: %v\n", err)
		os.Exit(1)
	}
}

func loadLayout(path string) (*scene.Layout, error) {
	if path == "" {
		return scene.Default()
	}
	return scene.Load(path)
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	layout, err := loadLayout(cfg.Scene)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	reg := status.NewRegistry()
	session, err := engine.NewSession(engine.Options{Layout: layout, Seed: seed, Registry: reg})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	// Audio degrades to a silent sink when the device is unavailable
	sounds := audio.NewSoundManager()
	if cfg.Audio {
		if err := sounds.Initialize(); err != nil {
			logrus.WithError(err).Warn("audio unavailable, continuing without sound")
		}
	} else {
		sounds.SetMuted(true)
	}
	sounds.SetVolume(cfg.Volume)
	defer sounds.Cleanup()
	session.Register(audio.NewHandler(sounds))

	store := openStore(ctx, cfg)
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}
	recorder := scoreboard.NewRecorder(store, scoreboard.SessionInfo{
		SessionID: session.ID.String(),
		Seed:      seed,
		Scene:     layout.Name,
		Started:   time.Now(),
	})
	session.Register(recorder)
	core.Go(func() { recorder.Run(ctx) })

	if cfg.MetricsEnabled() {
		counter := metrics.NewEventCounter()
		session.Register(counter)
		srv, err := metrics.NewServer(metrics.NewCollector(reg), counter.Collector())
		if err != nil {
			return err
		}
		core.Go(func() {
			if err := srv.ListenAndServe(ctx, cfg.MetricsAddr); err != nil {
				logrus.WithError(err).Error("metrics server stopped")
			}
		})
	}

	if cfg.SpectatorEnabled() {
		netCfg := network.DefaultConfig()
		netCfg.Address = cfg.SpectatorAddr
		netCfg.BroadcastInterval = cfg.TickInterval * parameter.SpectatorBroadcastEvery
		hub := network.NewHub(netCfg, session.ID.String(), reg)
		session.Register(hub)
		core.Go(func() { hub.Run(ctx) })
		core.Go(func() { hub.Feed(ctx, session) })
		core.Go(func() {
			if err := network.NewServer(hub).ListenAndServe(ctx, netCfg.Address); err != nil {
				logrus.WithError(err).Error("spectator feed stopped")
			}
		})
	}

	var failed atomic.Bool
	session.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventSceneLoad},
		Fn: func(ev event.GameEvent) {
			if p, ok := ev.Payload.(*event.SceneLoadPayload); ok && p.Scene == core.SceneFailure {
				failed.Store(true)
			}
		},
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	hud := render.NewHUD(screen)

	clock := engine.NewPausableClock()
	scheduler, _ := engine.NewClockScheduler(session, clock, cfg.TickInterval)
	session.Start()
	scheduler.Start()
	defer scheduler.Stop()

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	frames := time.NewTicker(cfg.FrameInterval)
	defer frames.Stop()

	var results []string
	resultsLoaded := false

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				hud.Resize()
			case *tcell.EventKey:
				if !handleKey(ev, session, scheduler, sounds, failed.Load()) {
					return nil
				}
			}

		case <-frames.C:
			if failed.Load() {
				if !resultsLoaded {
					results = waitForResults(ctx, recorder, store)
					resultsLoaded = true
				}
				hud.RenderFailure(session.Snapshot(), results)
				continue
			}
			hud.Render(session.Snapshot())
		}
	}
}

// volumeControl is the part of the sound manager the keys drive
type volumeControl interface {
	AdjustVolume(delta float64) float64
}

// handleKey applies one key press, false means quit
func handleKey(ev *tcell.EventKey, session *engine.Session, scheduler *engine.ClockScheduler, volume volumeControl, failed bool) bool {
	cmd := translateKey(ev, session.PuzzleOpen())
	if failed && cmd.act != actQuit {
		return true
	}

	switch cmd.act {
	case actQuit:
		return false
	case actPause:
		scheduler.TogglePause()
	case actVolumeUp:
		volume.AdjustVolume(parameter.AudioVolumeStep)
	case actVolumeDown:
		volume.AdjustVolume(-parameter.AudioVolumeStep)
	case actInteract:
		if !scheduler.IsPaused() {
			session.Interact()
		}
	case actMove:
		if !scheduler.IsPaused() {
			session.Move(cmd.dx, cmd.dy)
		}
	case actPuzzle:
		if !scheduler.IsPaused() {
			session.PuzzleInput(cmd.in)
		}
	}
	return true
}

// openStore connects to Redis when configured, falling back to memory
func openStore(ctx context.Context, cfg *config.Config) scoreboard.Store {
	if !cfg.RedisEnabled() {
		return scoreboard.NewMemoryStore()
	}
	store, err := scoreboard.Connect(ctx, scoreboard.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		Retries:  uint64(cfg.RedisRetries),
	})
	if err != nil {
		logrus.WithError(err).Warn("scoreboard: redis unavailable, keeping results in memory")
		return scoreboard.NewMemoryStore()
	}
	return store
}

// waitForResults gives the recorder a moment to store this session before listing the board
func waitForResults(ctx context.Context, recorder *scoreboard.Recorder, store scoreboard.Store) []string {
	select {
	case <-recorder.Saved():
	case <-time.After(time.Second):
	}
	lookupCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return scoreboard.TopLines(lookupCtx, store, parameter.HUDScoreRows)
}
