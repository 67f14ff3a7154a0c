// Command cliffsim runs the movement core headlessly: it loads a level,
// drives the session with scripted input at a fixed tick rate, and logs the
// resolved frames a renderer would consume.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/cliffside/components"
	cfg "github.com/automoto/cliffside/config"
	"github.com/automoto/cliffside/core"
	"github.com/automoto/cliffside/gamemath"
	"github.com/automoto/cliffside/leveldata"
)

func main() {
	levelsDir := flag.String("levels", "", "Directory containing .tmx levels (empty = built-in demo level)")
	levelName := flag.String("level", "", "Level to run (default: first by name)")
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (frames per second)")
	tuning := flag.String("tuning", "", "YAML tuning override file (watched for changes)")
	logEvery := flag.Int("logevery", 30, "Log the frame state every N ticks")
	flag.Parse()

	level, err := pickLevel(*levelsDir, *levelName)
	if err != nil {
		log.Fatalf("Load level: %v", err)
	}

	var watcher *cfg.Watcher
	if *tuning != "" {
		if err := cfg.ApplyOverrides(*tuning); err != nil {
			log.Fatalf("Apply tuning: %v", err)
		}
		watcher, err = cfg.NewWatcher(filepath.Dir(*tuning))
		if err != nil {
			log.Fatalf("Watch tuning: %v", err)
		}
		defer watcher.Close()
	}

	session, err := core.NewSession(level)
	if err != nil {
		log.Fatalf("Create session: %v", err)
	}

	progress, err := core.OpenProgress("cliffside")
	if err != nil {
		log.Printf("Warning: progress storage unavailable: %v", err)
	}

	loop := core.NewGameLoop(session, *tickRate, scriptedInput)
	if watcher != nil {
		loop.SetTuningWatcher(watcher)
	}
	loop.OnFrame = func(tick int, frame core.Frame) {
		if *logEvery > 0 && tick%*logEvery == 0 {
			log.Printf("tick=%d pos=(%.1f,%.1f) pose=%s frame=%d grounded=%t facing=%+.0f",
				tick, frame.Bounds.X, frame.Bounds.Y, frame.Pose, frame.FrameIndex,
				frame.Grounded, frame.FacingX)
		}

		switch {
		case frame.ReachedExit:
			log.Printf("Level %q complete in %.2fs", level.Name, session.Elapsed())
			if progress != nil {
				if best, err := progress.RecordCompletion(level.Name, session.Elapsed()); err != nil {
					log.Printf("Warning: could not save progress: %v", err)
				} else if best {
					log.Printf("New best time for %q", level.Name)
				}
			}
			loop.Stop()
		case !frame.Alive:
			log.Printf("Fell out of level %q, respawning", level.Name)
			session.Respawn()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	log.Printf("Running level %q (%dx%d tiles, tick rate: %d/s)",
		level.Name, level.Grid.Width(), level.Grid.Height(), *tickRate)
	loop.Run()
}

// scriptedInput walks right and taps jump in a cycle, enough to exercise
// gravity, the jump window and both collision axes without a real input
// device.
func scriptedInput(tick int) components.InputData {
	return components.InputData{
		Right: true,
		Up:    tick%90 < 20,
	}
}

func pickLevel(levelsDir, levelName string) (*leveldata.Level, error) {
	if levelsDir == "" {
		return demoLevel()
	}

	levels, names, err := leveldata.LoadAllLevels(os.DirFS(levelsDir), ".")
	if err != nil {
		return nil, err
	}
	if levelName == "" {
		levelName = names[0]
	}
	level, ok := levels[levelName]
	if !ok {
		return nil, os.ErrNotExist
	}
	return level, nil
}

// demoLevel is a small course with a floor, a step, a platform and an exit.
func demoLevel() (*leveldata.Level, error) {
	grid, err := leveldata.ParseRows([]string{
		"....................",
		"....................",
		"..........----......",
		"....................",
		"..............XX....",
		"XXXXXXXXXXXXXXXXXXXX",
	})
	if err != nil {
		return nil, err
	}

	exitTile := grid.TileBounds(17, 4)
	return &leveldata.Level{
		Name:    "demo",
		Grid:    grid,
		Spawn:   gamemath.Vec2{X: 40, Y: 80},
		Exit:    exitTile.Center(),
		HasExit: true,
	}, nil
}
