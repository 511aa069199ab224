package scene_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geo/point"
	"geo/rect"
	"geo/scene"
)

const script = `
# two boxes, one of them nudged
rect box 0 0 5 3 red
rect lid 0 3 5 4 blue

move box 2 -1
`

func TestParse(t *testing.T) {
	sc, err := scene.Parse(strings.NewReader(script))
	require.NoError(t, err)
	require.Len(t, sc.Items(), 2)

	box, ok := sc.Lookup("box")
	require.True(t, ok)
	assert.Equal(t, "red", box.Color)
	assert.True(t, box.Rect.BottomLeft().Equal(point.New(2, -1)))
	assert.True(t, box.Rect.TopRight().Equal(point.New(7, 2)))
	assert.Equal(t, 15, box.Rect.Area())

	lid, ok := sc.Lookup("lid")
	require.True(t, ok)
	assert.Equal(t, 5, lid.Rect.Width())
	assert.Equal(t, 1, lid.Rect.Height())

	// declaration order survives
	assert.Equal(t, "box", sc.Items()[0].Name)
	assert.Equal(t, "lid", sc.Items()[1].Name)
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  string
	}{
		{"unknown directive", "circle c 0 0 5 red", "unknown directive"},
		{"rect arity", "rect box 0 0 5 red", "rect wants"},
		{"move arity", "rect box 0 0 5 3 red\nmove box 2", "move wants"},
		{"bad integer", "rect box 0 0 five 3 red", `bad integer "five"`},
		{"undeclared move", "move ghost 1 1", "undeclared rectangle"},
		{"duplicate name", "rect box 0 0 5 3 red\nrect box 1 1 2 2 blue", "duplicate rectangle"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scene.Parse(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestAddDuplicate(t *testing.T) {
	sc := scene.New()
	r := rect.New(point.New(0, 0), point.New(1, 1))
	require.NoError(t, sc.Add("a", "red", r))
	assert.Error(t, sc.Add("a", "blue", r))
}

func TestPaint(t *testing.T) {
	sc, err := scene.Parse(strings.NewReader(script))
	require.NoError(t, err)

	cmds := sc.Paint()
	// fill, outline and label per item
	require.Len(t, cmds, 6)
	assert.Contains(t, cmds[0].String(), "DrawRect")
	assert.Contains(t, cmds[0].String(), "red")
	assert.Contains(t, cmds[1].String(), "DrawOutline")
	assert.Contains(t, cmds[2].String(), "DrawLabel(text='box'")
	assert.Contains(t, cmds[3].String(), "blue")
}
