package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvek/gatelight/core"
)

func TestInputButtonToggleOnClick(t *testing.T) {
	b := NewInputButton("A", core.Point{X: 10, Y: 10}, core.Size{W: 9, H: 3}, false)

	var toggled []bool
	b.OnToggle = func(v bool) { toggled = append(toggled, v) }

	// Press inside
	consumed := b.HandleMouse(MouseEvent{X: 12, Y: 11, Pressed: true})
	assert.True(t, consumed)
	assert.True(t, b.State())
	assert.True(t, b.Result())

	// Press outside leaves state alone
	consumed = b.HandleMouse(MouseEvent{X: 0, Y: 0, Pressed: true})
	assert.False(t, consumed)
	assert.True(t, b.State())

	// Second press inside toggles back
	b.HandleMouse(MouseEvent{X: 12, Y: 11, Pressed: true})
	assert.False(t, b.State())

	assert.Equal(t, []bool{true, false}, toggled)
}

func TestInputButtonMotionDoesNotToggle(t *testing.T) {
	b := NewInputButton("A", core.Point{X: 0, Y: 0}, core.Size{W: 5, H: 3}, true)
	b.HandleMouse(MouseEvent{X: 2, Y: 1})
	assert.True(t, b.State())
}

func TestMenuButtonAction(t *testing.T) {
	mb := NewMenuButton("Start", core.Point{X: 5, Y: 5}, core.Size{W: 10, H: 3})
	fired := 0
	mb.Action = func() { fired++ }

	mb.HandleMouse(MouseEvent{X: 6, Y: 6, Pressed: true})
	mb.HandleMouse(MouseEvent{X: 6, Y: 6})
	mb.HandleMouse(MouseEvent{X: 40, Y: 6, Pressed: true})

	assert.Equal(t, 1, fired)
}

func TestLEDProjectsSource(t *testing.T) {
	led := NewLED(core.Point{}, 2)
	assert.False(t, led.State(), "unwired LED reads false")

	s := &source{value: false}
	led.SetSource(s)
	assert.False(t, led.State())

	s.value = true
	assert.True(t, led.State(), "LED must track the source live")

	led.SetSource(nil)
	assert.False(t, led.State())
}

func TestLEDRenderColor(t *testing.T) {
	led := NewLED(core.Point{}, 2)
	s := &source{value: true}
	led.SetSource(s)

	on := led.RenderColor()
	s.value = false
	off := led.RenderColor()
	assert.NotEqual(t, on, off)
}

func TestLEDGeometry(t *testing.T) {
	led := NewLED(core.Point{X: 4, Y: 6}, 3)
	assert.Equal(t, core.Point{X: 4, Y: 6}, led.Position())
	assert.Equal(t, core.Size{W: 6, H: 6}, led.Size())
}

func TestConnectionLiveQuery(t *testing.T) {
	s := &source{value: false}
	c := NewConnection(core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 0}, s)

	assert.False(t, c.Live())
	s.value = true
	assert.True(t, c.Live(), "edge state is queried at call time, not cached")
}

func TestConnectionSetPoints(t *testing.T) {
	c := NewConnection(core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 2}, nil)
	c.SetPoints(core.Point{X: 5, Y: 5}, core.Point{X: 9, Y: 9})
	start, end := c.Points()
	assert.Equal(t, core.Point{X: 5, Y: 5}, start)
	assert.Equal(t, core.Point{X: 9, Y: 9}, end)
}

func TestANDCircuitScenario(t *testing.T) {
	a := NewInputButton("A", core.Point{}, core.Size{}, false)
	b := NewInputButton("B", core.Point{}, core.Size{}, false)
	gate := NewGate(GateAND, core.Point{}, core.Size{})
	led := NewLED(core.Point{}, 2)

	require.NoError(t, gate.AddInput(a))
	require.NoError(t, gate.AddInput(b))
	led.SetSource(gate)

	assert.False(t, gate.Result())
	assert.False(t, led.State())

	a.SetState(true)
	assert.False(t, gate.Result())
	assert.False(t, led.State())

	b.SetState(true)
	assert.True(t, gate.Result())
	assert.True(t, led.State())

	a.SetState(false)
	assert.False(t, gate.Result())
	assert.False(t, led.State())
}
