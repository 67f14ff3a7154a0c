package core

import (
	"log"
	"time"

	"github.com/automoto/cliffside/components"
	cfg "github.com/automoto/cliffside/config"
)

// InputFunc supplies the input snapshot for a given tick. This is the seam
// where a real input collaborator plugs in; the simulator uses a scripted one.
type InputFunc func(tick int) components.InputData

// GameLoop drives a session at a fixed tick rate with dt = 1/tickRate.
// Tuning-reload events are drained between ticks so config never changes
// while a frame is in flight.
type GameLoop struct {
	session  *Session
	tickRate int
	input    InputFunc
	watcher  *cfg.Watcher
	stopChan chan struct{}

	// OnFrame, when set, is invoked synchronously after every step with
	// the resolved frame. Set before Run.
	OnFrame func(tick int, frame Frame)
}

func NewGameLoop(session *Session, tickRate int, input InputFunc) *GameLoop {
	return &GameLoop{
		session:  session,
		tickRate: tickRate,
		input:    input,
		stopChan: make(chan struct{}),
	}
}

// SetTuningWatcher attaches a tuning hot-reload watcher. Must be called
// before Run.
func (g *GameLoop) SetTuningWatcher(w *cfg.Watcher) {
	g.watcher = w
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	dt := 1.0 / float64(g.tickRate)
	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	tick := 0
	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.drainTuningEvents()
			g.session.Step(dt, g.input(tick))
			if g.OnFrame != nil {
				g.OnFrame(tick, g.session.Frame())
			}
			tick++
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) drainTuningEvents() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Events:
			if err := cfg.ApplyOverrides(path); err != nil {
				log.Printf("Tuning reload failed: %v", err)
			} else {
				log.Printf("Tuning reloaded from %s", path)
			}
		case err := <-g.watcher.Errors:
			log.Printf("Tuning watcher error: %v", err)
		default:
			return
		}
	}
}
