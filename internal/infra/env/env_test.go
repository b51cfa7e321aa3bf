package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOS_LookupEnv(t *testing.T) {
	t.Setenv("FIXED_SKIPS_TEST_VAR", "value")

	v, ok := OS{}.LookupEnv("FIXED_SKIPS_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	_, ok = OS{}.LookupEnv("FIXED_SKIPS_TEST_VAR_UNSET")
	assert.False(t, ok)
}
