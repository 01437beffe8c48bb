// FILE: main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/slipstream/audio"
	"github.com/lixenwraith/slipstream/config"
	"github.com/lixenwraith/slipstream/core"
	"github.com/lixenwraith/slipstream/engine"
	"github.com/lixenwraith/slipstream/event"
	"github.com/lixenwraith/slipstream/input"
	"github.com/lixenwraith/slipstream/parameter"
	"github.com/lixenwraith/slipstream/render"
	"github.com/lixenwraith/slipstream/status"
	"github.com/lixenwraith/slipstream/system"
	"github.com/lixenwraith/slipstream/track"
)

// Race hosts the fixed-tick simulation behind a terminal front end.
// The terminal is a stand-in presentation surface: the simulation core
// never sees it
type Race struct {
	screen tcell.Screen
	tune   config.Tuning

	trk      track.Track
	queue    *event.Queue
	router   *event.Router
	registry *status.Registry

	loop    *engine.Loop
	racer   *system.RacerSystem
	camera  *system.CameraSystem
	machine *input.Machine

	sounds *audio.SoundManager
	hud    *render.HUD

	lastFrame time.Time
}

func NewRace(tune config.Tuning) (*Race, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	core.RegisterCrashScreen(screen)
	screen.EnableMouse()

	trk := track.DefaultCircuit()
	queue := event.NewQueue()
	registry := status.NewRegistry()

	r := &Race{
		screen:    screen,
		tune:      tune,
		trk:       trk,
		queue:     queue,
		router:    event.NewRouter(queue),
		registry:  registry,
		loop:      engine.NewLoop(parameter.TickInterval, parameter.MaxTicksPerFrame),
		racer:     system.NewRacerSystem(trk, queue, registry, tune),
		camera:    system.NewCameraSystem(tune),
		machine:   input.NewMachine(),
		sounds:    audio.NewSoundManager(),
		hud:       render.NewHUD(screen),
		lastFrame: time.Now(),
	}

	// Audio is optional; the race runs silently without a device
	if err := r.sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	r.router.Register(audio.NewObserver(r.sounds))

	return r, nil
}

func (r *Race) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			eventChan <- r.screen.PollEvent()
		}
	})

	for {
		select {
		case ev := <-eventChan:
			if resize, ok := ev.(*tcell.EventResize); ok {
				r.hud.Resize(resize.Size())
				r.screen.Sync()
				continue
			}
			r.machine.HandleEvent(ev, time.Now())
			if r.machine.QuitRequested() {
				return
			}
			if r.machine.ResetRequested() {
				r.racer.Reset()
				r.camera.Reset()
				r.loop.Reset()
				r.lastFrame = time.Now()
			}

		case <-ticker.C:
			r.frame()
		}
	}
}

// frame runs one presentation frame: latch input, advance the fixed-tick
// loop, derive the camera, dispatch events, draw
func (r *Race) frame() {
	now := time.Now()
	intent := r.machine.Latch(now)

	delta := now.Sub(r.lastFrame)
	r.lastFrame = now
	ticks := r.loop.Advance(delta, func(dt float64) {
		r.racer.Step(intent, dt)
	})

	st := r.racer.State()
	if ticks > 0 {
		r.camera.Update(r.racer.Frame(), st, intent, float64(ticks)*r.loop.Step().Seconds())
	}

	r.router.DispatchAll()
	r.hud.RenderFrame(st, r.trk, r.tune, r.racer.Elapsed())
}

func (r *Race) cleanup() {
	r.sounds.Cleanup()
	r.screen.Fini()
}

func main() {
	defer func() {
		if rec := recover(); rec != nil {
			core.HandleCrash(rec)
		}
	}()

	tuningPath := flag.String("tuning", "", "path to a YAML tuning override file")
	flag.Parse()

	tune := config.Default()
	if *tuningPath != "" {
		loaded, err := config.Load(*tuningPath)
		if err != nil {
			log.Printf("Tuning load failed, using defaults: %v", err)
		}
		tune = loaded
	}

	race, err := NewRace(tune)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer race.cleanup()

	race.run()
}
