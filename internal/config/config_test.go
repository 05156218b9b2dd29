package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPopulatesDefaults(t *testing.T) {
	v := New()
	require.Equal(t, DefaultMapPrefix, v.GetString(KeyMapPrefix))
	require.Equal(t, DefaultSourceNS, v.GetString(KeySourceNS))
	require.Equal(t, DefaultLoadBatch, v.GetInt(KeyLoadBatch))
}

func TestEnvOverrideTakesPrecedence(t *testing.T) {
	t.Setenv("ARGATRANSFORM_SCHEMA_MAP_PREFIX", "http://example.org/mapping/")
	v := New()
	require.Equal(t, "http://example.org/mapping/", v.GetString(KeyMapPrefix))
}
