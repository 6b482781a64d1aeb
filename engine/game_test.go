package engine

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvek/gatelight/render"
)

// chanScene forwards render contexts and events to the test goroutine
type chanScene struct {
	contexts chan render.Context
	events   chan tcell.Event
}

func newChanScene() *chanScene {
	return &chanScene{
		contexts: make(chan render.Context, 16),
		events:   make(chan tcell.Event, 16),
	}
}

func (s *chanScene) HandleEvent(ev tcell.Event) {
	select {
	case s.events <- ev:
	default:
	}
}

func (s *chanScene) Update(dt float64) {}

func (s *chanScene) Render(r render.Renderer, rc render.Context) {
	select {
	case s.contexts <- rc:
	default:
	}
}

func simScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	return screen
}

func runGame(g *Game) chan struct{} {
	done := make(chan struct{})
	go func() {
		g.Run()
		close(done)
	}()
	return done
}

func waitDone(t *testing.T, done chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("game loop did not stop")
	}
}

func TestQuitStopsRun(t *testing.T) {
	g := NewGame(simScreen(t), newChanScene(), NewMockClock(), time.Millisecond)
	done := runGame(g)

	g.Quit()
	g.Quit() // repeated calls must not panic
	waitDone(t, done)
}

func TestEscapeKeyStopsRun(t *testing.T) {
	screen := simScreen(t)
	g := NewGame(screen, newChanScene(), NewMockClock(), time.Millisecond)
	done := runGame(g)

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	waitDone(t, done)
}

func TestDebugToggleReachesRenderContext(t *testing.T) {
	screen := simScreen(t)
	scene := newChanScene()
	clock := NewMockClock()
	g := NewGame(screen, scene, clock, time.Millisecond)
	done := runGame(g)
	defer waitDone(t, done)
	defer g.Quit()

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)))

	deadline := time.After(2 * time.Second)
	for {
		select {
		case rc := <-scene.contexts:
			if rc.Debug {
				assert.Equal(t, clock.Now(), rc.FrameTime)
				return
			}
		case <-deadline:
			t.Fatal("debug flag never reached the render context")
		}
	}
}

func TestUnhandledKeysForwardToScene(t *testing.T) {
	screen := simScreen(t)
	scene := newChanScene()
	g := NewGame(screen, scene, NewMockClock(), time.Millisecond)
	done := runGame(g)
	defer waitDone(t, done)
	defer g.Quit()

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)))

	select {
	case ev := <-scene.events:
		key, ok := ev.(*tcell.EventKey)
		require.True(t, ok)
		assert.Equal(t, 'c', key.Rune())
	case <-time.After(2 * time.Second):
		t.Fatal("event never reached the scene")
	}
}

func TestMockClockAdvance(t *testing.T) {
	clock := NewMockClock()
	start := clock.Now()

	clock.Advance(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, clock.Now().Sub(start))

	// Without Advance the mock clock stands still
	assert.Equal(t, clock.Now(), clock.Now())
}
