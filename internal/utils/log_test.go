package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLoggerIsSingleton(t *testing.T) {
	a := GetLogger()
	b := GetLogger()
	assert.Same(t, a, b)
	assert.NoError(t, InitLogger("debug", ""))
}
