package textfold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "ca phe sua", Fold("Cà Phê Sữa"))
	assert.Equal(t, "coffee", Fold("COFFEE"))
	assert.Equal(t, "an uong", Fold("Ăn uống"))
}

func TestFoldPlainASCIIUnchanged(t *testing.T) {
	assert.Equal(t, "grocery run 12", Fold("Grocery Run 12"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Cà phê Highlands", "ca phe"))
	assert.True(t, Contains("Morning COFFEE", "coffee"))
	assert.False(t, Contains("Tiền điện", "coffee"))
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("cafe sáng", "coffee", "cafe", "ca phe"))
	assert.False(t, ContainsAny("mua rau", "coffee", "cafe", "ca phe"))
}
