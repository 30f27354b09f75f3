package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.4.0", "2026-10-01", "abc123")

	assert.Equal(t, "v1.4.0", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.False(t, info.IsDevelopment())
}

func TestAppBuildInfo_IsDevelopment(t *testing.T) {
	for _, version := range []string{"", "  "} {
		assert.True(t, NewAppBuildInfo(version, "", "").IsDevelopment(), "version %q", version)
	}
}
