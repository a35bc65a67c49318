package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVersionInfo(t *testing.T) {
	// Save original values
	origVersion := versionInfo.Version
	origCommit := versionInfo.Commit
	origBuildDate := versionInfo.BuildDate
	defer func() {
		versionInfo.Version = origVersion
		versionInfo.Commit = origCommit
		versionInfo.BuildDate = origBuildDate
	}()

	tests := []struct {
		name      string
		version   string
		commit    string
		buildDate string
	}{
		{
			name:      "set all values",
			version:   "1.0.0",
			commit:    "abc123",
			buildDate: "2026-01-15",
		},
		{
			name:      "set dev version",
			version:   "dev",
			commit:    "HEAD",
			buildDate: "unknown",
		},
		{
			name:      "set empty values",
			version:   "",
			commit:    "",
			buildDate: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetVersionInfo(tt.version, tt.commit, tt.buildDate)

			assert.Equal(t, tt.version, versionInfo.Version)
			assert.Equal(t, tt.commit, versionInfo.Commit)
			assert.Equal(t, tt.buildDate, versionInfo.BuildDate)
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{
		"login", "logout", "register", "whoami",
		"jobs", "propose", "proposals", "dashboard",
		"profile", "services", "notifications", "upload",
		"review", "doctor", "serve", "version",
	}

	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range want {
		assert.True(t, names[name], "command %q should be registered", name)
	}
}

func TestJobsSubcommandsRegistered(t *testing.T) {
	want := []string{"list", "mine", "show", "post", "status"}

	names := make(map[string]bool)
	for _, c := range jobsCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range want {
		assert.True(t, names[name], "jobs subcommand %q should be registered", name)
	}
}

func TestLoadConfig_FlagOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	origAPIURL := rootAPIURL
	origOutput := rootOutput
	defer func() {
		rootAPIURL = origAPIURL
		rootOutput = origOutput
	}()

	t.Run("api url override", func(t *testing.T) {
		rootAPIURL = "http://localhost:5000/api/v1"
		rootOutput = ""

		cfg, err := loadConfig(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5000/api/v1", cfg.API.BaseURL)
	})

	t.Run("output override", func(t *testing.T) {
		rootAPIURL = ""
		rootOutput = "jsonl"

		cfg, err := loadConfig(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "jsonl", cfg.Output.Format)
	})

	t.Run("rejects unknown output format", func(t *testing.T) {
		rootAPIURL = ""
		rootOutput = "xml"

		_, err := loadConfig(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported output format")
	})
}

func TestExpandUploadPatterns(t *testing.T) {
	dir := t.TempDir()
	mustWrite := func(rel string) {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	mustWrite("a.jpg")
	mustWrite("b.png")
	mustWrite("nested/c.jpg")

	t.Run("literal path", func(t *testing.T) {
		paths, err := expandUploadPatterns([]string{filepath.Join(dir, "a.jpg")})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.jpg")}, paths)
	})

	t.Run("recursive glob", func(t *testing.T) {
		paths, err := expandUploadPatterns([]string{filepath.Join(dir, "**", "*.jpg")})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.jpg"),
			filepath.Join(dir, "nested", "c.jpg"),
		}, paths)
	})

	t.Run("deduplicates overlapping patterns", func(t *testing.T) {
		paths, err := expandUploadPatterns([]string{
			filepath.Join(dir, "a.jpg"),
			filepath.Join(dir, "*.jpg"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.jpg")}, paths)
	})

	t.Run("no matches", func(t *testing.T) {
		paths, err := expandUploadPatterns([]string{filepath.Join(dir, "*.gif")})
		require.NoError(t, err)
		assert.Empty(t, paths)
	})
}
