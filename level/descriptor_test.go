package level

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvek/gatelight/core"
)

func TestDescriptorDecodeToSpec(t *testing.T) {
	raw := `{
	  "name": "Sample",
	  "background": {"type": "background", "color": [12, 14, 24]},
	  "components": [
	    {"type": "input_button", "id": "in_a", "text": "A", "position": [2, 4],
	     "size": [9, 3], "initial_state": true},
	    {"type": "led", "position": [40, 7], "radius": 3},
	    {"type": "menu_button", "text": "Start", "callback": "start_game"}
	  ],
	  "connections": [
	    {"from": "in_a", "to": "led", "input_index": 1}
	  ]
	}`

	var desc Descriptor
	require.NoError(t, json.Unmarshal([]byte(raw), &desc))

	assert.Equal(t, "Sample", desc.Name)
	require.NotNil(t, desc.Background)
	require.Len(t, desc.Components, 3)
	require.Len(t, desc.Connections, 1)

	bg := desc.Background.Spec()
	require.NotNil(t, bg.Color)
	assert.Equal(t, core.RGB{R: 12, G: 14, B: 24}, *bg.Color)

	button := desc.Components[0].Spec()
	assert.Equal(t, "input_button", button.Type)
	assert.Equal(t, "in_a", button.ID)
	assert.Equal(t, "A", button.Text)
	assert.Equal(t, core.Point{X: 2, Y: 4}, button.Position)
	assert.Equal(t, core.Size{W: 9, H: 3}, button.Size)
	assert.True(t, button.Initial)
	assert.Nil(t, button.Color)

	led := desc.Components[1].Spec()
	assert.Equal(t, 3, led.Radius)
	assert.Empty(t, led.ID, "missing id stays empty; the manager generates one")

	menu := desc.Components[2].Spec()
	assert.Equal(t, "start_game", menu.Callback)

	conn := desc.Connections[0]
	assert.Equal(t, "in_a", conn.From)
	assert.Equal(t, "led", conn.To)
	assert.Equal(t, 1, conn.InputIndex)
}

func TestDescriptorShortVectorsIgnored(t *testing.T) {
	entry := ComponentEntry{Type: "text", Position: []int{7}, Size: []int{3}, Color: []int{1, 2}}
	spec := entry.Spec()

	// Truncated vectors are dropped rather than partially applied
	assert.Equal(t, core.Point{}, spec.Position)
	assert.Equal(t, core.Size{}, spec.Size)
	assert.Nil(t, spec.Color)
}
