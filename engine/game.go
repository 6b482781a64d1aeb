package engine

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/halvek/gatelight/core"
	"github.com/halvek/gatelight/render"
)

// backgroundColor clears the frame when the level has no background component
var backgroundColor = core.RGB{R: 10, G: 10, B: 14}

// Scene is what the game loop drives each frame. The level manager is the
// only production implementation.
type Scene interface {
	// HandleEvent receives input events not consumed by the loop itself
	HandleEvent(ev tcell.Event)
	// Update advances all scene state; always runs before Render
	Update(dt float64)
	// Render draws the scene into the frame
	Render(r render.Renderer, rc render.Context)
}

// Game owns the screen, the frame buffer and the fixed-step loop:
// handleInput, updateAll, renderAll, repeated until quit.
type Game struct {
	screen tcell.Screen
	frame  *render.Frame
	clock  Clock
	scene  Scene

	tick  time.Duration
	debug bool
	quit  chan struct{}
}

// NewGame wires the loop around an initialized screen and a scene
func NewGame(screen tcell.Screen, scene Scene, clock Clock, tick time.Duration) *Game {
	if clock == nil {
		clock = NewClock()
	}
	if tick <= 0 {
		tick = 16 * time.Millisecond
	}
	w, h := screen.Size()
	return &Game{
		screen: screen,
		frame:  render.NewFrame(w, h),
		clock:  clock,
		scene:  scene,
		tick:   tick,
		quit:   make(chan struct{}),
	}
}

// Quit stops the loop after the current iteration. Safe to call from
// scene callbacks and repeatedly.
func (g *Game) Quit() {
	select {
	case <-g.quit:
	default:
		close(g.quit)
	}
}

// Run executes the main loop until a quit key or Quit call. Update always
// completes before Render reads any value; both run on this goroutine.
func (g *Game) Run() {
	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := g.clock.Now()
	for {
		select {
		case <-g.quit:
			return

		case ev := <-events:
			if !g.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			now := g.clock.Now()
			dt := now.Sub(last).Seconds()
			last = now

			g.scene.Update(dt)

			w, h := g.frame.Size()
			rc := render.Context{
				FrameTime:    now,
				DeltaTime:    dt,
				ScreenWidth:  w,
				ScreenHeight: h,
				Debug:        g.debug,
			}
			g.frame.Clear(backgroundColor)
			g.scene.Render(g.frame, rc)
			g.frame.Flush(g.screen)
		}
	}
}

// handleEvent consumes loop-level controls and forwards the rest.
// Returns false when the game should exit.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		if tev.Key() == tcell.KeyEscape || tev.Key() == tcell.KeyCtrlC {
			return false
		}
		if tev.Key() == tcell.KeyRune {
			switch tev.Rune() {
			case 'q':
				return false
			case 'd':
				g.debug = !g.debug
				return true
			}
		}
		g.scene.HandleEvent(ev)

	case *tcell.EventResize:
		w, h := g.screen.Size()
		g.frame.Resize(w, h)
		g.screen.Sync()
		g.scene.HandleEvent(ev)

	default:
		g.scene.HandleEvent(ev)
	}
	return true
}
