package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewOptionsDefaults(t *testing.T) {
	opts := NewOptions()
	require.Equal(t, ColorNone, opts.Color)
	require.False(t, opts.Watermark)
	require.Equal(t, ShapeNone, opts.Shape)
}

func TestSetColorReplaces(t *testing.T) {
	opts := NewOptions()
	opts.SetColor(ColorSepia)
	require.Equal(t, ColorSepia, opts.Color)
	opts.SetColor(ColorGrayscale)
	require.Equal(t, ColorGrayscale, opts.Color)
}

func TestToggleWatermark(t *testing.T) {
	opts := NewOptions()
	opts.ToggleWatermark()
	require.True(t, opts.Watermark)
	opts.ToggleWatermark()
	require.False(t, opts.Watermark)
}

func TestToggleShapeTwoStates(t *testing.T) {
	opts := NewOptions()
	opts.ToggleShape()
	require.Equal(t, ShapeCircle, opts.Shape)
	opts.ToggleShape()
	require.Equal(t, ShapeNone, opts.Shape)
}
