package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kibahcorps/schedule1-go/pkg/utils"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, utils.Clamp(-3, 1, 8))
	assert.Equal(t, 1, utils.Clamp(0, 1, 8))
	assert.Equal(t, 5, utils.Clamp(5, 1, 8))
	assert.Equal(t, 8, utils.Clamp(12, 1, 8))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 2, utils.Min(2, 3))
	assert.Equal(t, 3, utils.Max(2, 3))
}
