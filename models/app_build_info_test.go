package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo(" 1.4.0 ", "", "c0ffee")

	assert.Equal(t, "1.4.0", info.Version)
	assert.Equal(t, "N/A", info.Date)
	assert.Equal(t, "c0ffee", info.Commit)
	assert.True(t, info.Released())
	assert.Equal(t, "Build version: 1.4.0\nBuild date: N/A\nBuild commit: c0ffee\n", info.String())
}

func TestAppBuildInfo_Released(t *testing.T) {
	assert.False(t, NewAppBuildInfo("", "", "").Released())
	assert.False(t, AppBuildInfo{}.Released())
	assert.True(t, AppBuildInfo{Version: "dev"}.Released())
}
