package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrySetFromEnv(t *testing.T) {
	t.Setenv("TOKEN_STORE_TEST_STR", "value")

	val := "default"
	TrySetFromEnv("TOKEN_STORE_TEST_STR", &val)
	assert.Equal(t, "value", val)

	missing := "default"
	TrySetFromEnv("TOKEN_STORE_TEST_MISSING", &missing)
	assert.Equal(t, "default", missing)
}

func TestTrySetIntFromEnv(t *testing.T) {
	type testCase struct {
		name     string
		envValue string
		setEnv   bool

		expected  int
		expectErr bool
	}

	tests := []testCase{
		{name: "not set keeps default", expected: 7},
		{name: "valid value", envValue: "128", setEnv: true, expected: 128},
		{name: "invalid value", envValue: "many", setEnv: true, expected: 7, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv("TOKEN_STORE_TEST_INT", tt.envValue)
			}

			val := 7
			err := TrySetIntFromEnv("TOKEN_STORE_TEST_INT", &val)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, val)
		})
	}
}

func TestTrySetFloatAndBoolFromEnv(t *testing.T) {
	t.Setenv("TOKEN_STORE_TEST_FLOAT", "2.5")
	t.Setenv("TOKEN_STORE_TEST_BOOL", "true")

	rps := 1.0
	assert.NoError(t, TrySetFloatFromEnv("TOKEN_STORE_TEST_FLOAT", &rps))
	assert.Equal(t, 2.5, rps)

	enabled := false
	assert.NoError(t, TrySetBoolFromEnv("TOKEN_STORE_TEST_BOOL", &enabled))
	assert.True(t, enabled)

	t.Setenv("TOKEN_STORE_TEST_BOOL", "maybe")
	assert.Error(t, TrySetBoolFromEnv("TOKEN_STORE_TEST_BOOL", &enabled))
}
