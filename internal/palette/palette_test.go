package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForLabelDeterministic(t *testing.T) {
	first := ForLabel("Ăn uống")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ForLabel("Ăn uống"))
	}
}

func TestForLabelEmpty(t *testing.T) {
	assert.Equal(t, colors[0], ForLabel(""))
}

func TestForLabelInPalette(t *testing.T) {
	labels := []string{"Food", "Transport", "Rent", "Cà phê", "x"}
	for _, label := range labels {
		got := ForLabel(label)
		assert.Contains(t, colors[:], got, "label %q", label)
	}
}

func TestDistinctLabelsCanDiffer(t *testing.T) {
	// Not guaranteed for every pair, but these two must not collide or the
	// hash is degenerate.
	assert.NotEqual(t, ForLabel("Food"), ForLabel("Transport"))
}
