package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_Profile(t *testing.T) {
	empty := ""
	preview := "preview"

	assert.Equal(t, "local", Build{}.Profile())
	assert.Equal(t, "local", Build{BuildProfile: &empty}.Profile())
	assert.Equal(t, "preview", Build{BuildProfile: &preview}.Profile())
}

func TestBuild_Helpers(t *testing.T) {
	url := "https://artifacts/app.apk"

	b := Build{Artifacts: &BuildArtifacts{BuildURL: &url}, Error: &BuildError{Message: "failed"}}
	assert.Equal(t, url, b.ArtifactURL())
	assert.Equal(t, "failed", b.ErrorMessage())

	assert.Empty(t, Build{}.ArtifactURL())
	assert.Empty(t, Build{Artifacts: &BuildArtifacts{}}.ArtifactURL())
	assert.Empty(t, Build{}.ErrorMessage())
}

func TestBuild_Version(t *testing.T) {
	version := "1.0"
	build := "7"

	assert.Equal(t, "", Build{}.Version())
	assert.Equal(t, "1.0", Build{AppVersion: &version}.Version())
	assert.Equal(t, "(7)", Build{AppBuildVersion: &build}.Version())
	assert.Equal(t, "1.0 (7)", Build{AppBuildVersion: &build, AppVersion: &version}.Version())
}

func TestBuild_ShortCommit(t *testing.T) {
	long := "abcdef1234567"
	short := "abc"

	assert.Equal(t, "", Build{}.ShortCommit())
	assert.Equal(t, "abcdef1", Build{GitCommitHash: &long}.ShortCommit())
	assert.Equal(t, "abc", Build{GitCommitHash: &short}.ShortCommit())
}

func TestBuildStatus_IsActive(t *testing.T) {
	active := []BuildStatus{BuildInProgress, BuildInQueue, BuildNew, BuildPendingCancel}
	done := []BuildStatus{BuildFinished, BuildErrored, BuildCanceled}

	for _, s := range active {
		assert.True(t, s.IsActive(), s)
	}
	for _, s := range done {
		assert.False(t, s.IsActive(), s)
	}
}
