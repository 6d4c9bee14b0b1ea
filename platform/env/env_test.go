package env

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestOrDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	os.Setenv("TEST_OR_DEFAULT", "value")
	defer os.Unsetenv("TEST_OR_DEFAULT")

	assert.Equal(t, "value", OrDefault(log, "TEST_OR_DEFAULT", "default"))
	assert.Equal(t, "default", OrDefault(log, "TEST_OR_DEFAULT_MISSING", "default"))
}

func TestIntDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	os.Setenv("TEST_INT", "42")
	defer os.Unsetenv("TEST_INT")

	assert.Equal(t, 42, IntDefault(log, "TEST_INT", "1"))
	assert.Equal(t, 7, IntDefault(log, "TEST_INT_MISSING", "7"))
}

func TestDurationDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	os.Setenv("TEST_DURATION", "30s")
	defer os.Unsetenv("TEST_DURATION")

	assert.Equal(t, 30*time.Second, DurationDefault(log, "TEST_DURATION", "1s"))
	assert.Equal(t, 5*time.Second, DurationDefault(log, "TEST_DURATION_MISSING", "5s"))
}

func TestBoolDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	os.Setenv("TEST_BOOL", "true")
	defer os.Unsetenv("TEST_BOOL")

	assert.True(t, BoolDefault(log, "TEST_BOOL", "f"))
	assert.False(t, BoolDefault(log, "TEST_BOOL_MISSING", "f"))
}

func TestMust(t *testing.T) {
	log := zap.NewNop().Sugar()

	os.Setenv("TEST_MUST", "value")
	defer os.Unsetenv("TEST_MUST")

	assert.Equal(t, "value", Must(log, "TEST_MUST"))
	assert.Panics(t, func() { Must(log, "TEST_MUST_MISSING") })
}
