package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidSemver(t *testing.T) {
	info, err := Get()
	require.NoError(t, err)
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestGet_RejectsInvalidVersion(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "not-a-version"
	_, err := Get()
	assert.Error(t, err)
}

func TestInfo_String(t *testing.T) {
	info, err := Get()
	require.NoError(t, err)
	assert.Contains(t, info.String(), "cmdly v"+Version)
}
