package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"

	"github.com/ScaratP/TypingMonster/achievement"
	"github.com/ScaratP/TypingMonster/config"
	"github.com/ScaratP/TypingMonster/engine"
	"github.com/ScaratP/TypingMonster/input"
	"github.com/ScaratP/TypingMonster/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) (code int) {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, persisted := loadSettings(o, stderr)

	logFile := setupLogging(cfg.Debug.Enabled)
	if logFile != nil {
		defer logFile.Close()
	}

	catalog := loadCatalog(cfg.Game.Catalog, stderr)
	settings := newSelection(catalog, cfg, stderr)

	if o.list {
		printCatalog(stdout, catalog, settings)
		return 0
	}

	keys := loadKeys(cfg.Input.Keymap, stderr)

	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[LIFECYCLE] start seed=%d theme=%s level=%d difficulty=%s",
		seed, settings.ThemeID(), settings.LevelID(), settings.DifficultyID())

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", color.RedString("Failed to create screen:"), err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(stderr, "%s %v\n", color.RedString("Failed to initialize terminal:"), err)
		return 1
	}
	screenClosed := false
	closeScreen := func() {
		if !screenClosed {
			screenClosed = true
			screen.Fini()
		}
	}
	defer closeScreen()

	// Restore the terminal before reporting a crash on this goroutine
	defer func() {
		if r := recover(); r != nil {
			closeScreen()
			fmt.Fprintf(stderr, "\n%s %v\n", color.RedString("TYPING MONSTER CRASHED:"), r)
			fmt.Fprintf(stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen)

	tracker := achievement.NewTracker(func(a achievement.Achievement, _ time.Time) {
		renderer.ShowToast(a.Title)
	})

	bounds := renderer.WorldBounds()
	var ctrl *engine.Controller
	ctrl, err = engine.NewController(settings,
		engine.WithRand(rand.New(rand.NewSource(seed))),
		engine.WithBounds(bounds.Width, bounds.Height),
		engine.WithRenderer(func(f engine.Frame) {
			// Runs on the scheduler goroutine, after the tick
			tracker.Refresh(ctrl.Clock().Now())
			renderer.Render(f)
		}),
	)
	if err != nil {
		closeScreen()
		fmt.Fprintf(stderr, "%s %v\n", color.RedString("Failed to create game:"), err)
		return 1
	}
	ctrl.RegisterHandler(tracker)

	debugPanel := cfg.Debug.Enabled
	if debugPanel {
		renderer.SetDebug(ctrl.Registry())
	}

	type crash struct {
		value any
		stack []byte
	}
	crashed := make(chan crash, 1)

	sched := engine.NewScheduler(ctrl, cfg.Game.Tick)
	sched.OnPanic = func(v any, stack []byte) {
		crashed <- crash{v, stack}
	}
	sched.Start()
	defer sched.Stop()

	router := input.NewRouter(sched, ctrl, settings)
	machine := input.NewMachine(keys)

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses a raw goroutine; PollEvent returns nil once the screen is finalized
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

loop:
	for {
		select {
		case c := <-crashed:
			closeScreen()
			fmt.Fprintf(stderr, "\n%s %v\n", color.RedString("GAME CRASHED:"), c.value)
			fmt.Fprintf(stderr, "Stack Trace:\n%s\n", c.stack)
			return 1

		case ev, ok := <-eventChan:
			if !ok {
				break loop
			}
			switch router.Route(machine.Process(ev)) {
			case input.OutcomeQuit:
				break loop
			case input.OutcomeResize:
				screen.Sync()
				b := renderer.WorldBounds()
				sched.Submit(func(c *engine.Controller) { c.SetBounds(b.Width, b.Height) })
			case input.OutcomeToggleDebug:
				debugPanel = !debugPanel
				if debugPanel {
					renderer.SetDebug(ctrl.Registry())
				} else {
					renderer.SetDebug(nil)
				}
			}
		}
	}

	sched.Stop()
	closeScreen()

	if persisted != nil {
		rememberSelection(persisted, settings)
		if err := config.Save(o.settings, *persisted); err != nil {
			warn(stderr, "%v", err)
		}
	}

	printSummary(stdout, tracker)
	log.Printf("[LIFECYCLE] exit unlocked=%d", tracker.UnlockedCount())
	return 0
}
