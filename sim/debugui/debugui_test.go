package debugui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fudance/shipsim/sim"
)

func TestNewInspectorSystemClampsHistory(t *testing.T) {
	pipeline := sim.NewPipeline(sim.NewWorld())

	for _, frames := range []int{-5, 0, 1} {
		s := NewInspectorSystem(pipeline, frames)
		assert.Equal(t, 1, s.historyFrames)
		assert.Len(t, s.frameHistory, 1)
	}

	s := NewInspectorSystem(pipeline, 120)
	assert.Equal(t, 120, s.historyFrames)
	assert.Len(t, s.frameHistory, 120)
}
