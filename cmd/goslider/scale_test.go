package main

import (
	"testing"

	"github.com/philipparndt/goslider/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleOutsideSourceRange(t *testing.T) {
	from := geometry.Interval{Min: 0, Max: 1, Rounds: 1}
	to := geometry.Interval{Min: 0, Max: 10, Rounds: 1}

	above, err := geometry.ScaleValue(1.25, from, to)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, above, 1e-9, "folded into a single round")

	below, err := geometry.ScaleValue(-0.25, from, to)
	require.NoError(t, err)
	assert.InDelta(t, -2.5, below, 1e-9, "kept below the target minimum")

	assert.Contains(t, scaleCmd.Long, "fold back")
	assert.Contains(t, scaleCmd.Long, "keep their sign")
}
