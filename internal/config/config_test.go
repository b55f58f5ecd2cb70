package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		EnvLogPath:  "/tmp/spire.log",
		EnvVerbose:  "true",
		EnvTabWidth: "8",
	}))
	require.NoError(t, err)
	assert.Equal(t, Config{LogPath: "/tmp/spire.log", Verbose: true, TabWidth: 8}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"verbose not bool": {EnvVerbose: "loud"},
		"tab width text":   {EnvTabWidth: "wide"},
		"tab width zero":   {EnvTabWidth: "0"},
		"tab width huge":   {EnvTabWidth: "99"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(env(vars))
			assert.Error(t, err)
		})
	}
}
