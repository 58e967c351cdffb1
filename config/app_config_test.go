package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfigMissingFileFallsBack(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.SectionsPageSize)
	assert.Equal(t, 10, cfg.TopicsPageSize)
	assert.Equal(t, 10, cfg.CommentsPageSize)
	assert.Equal(t, ":8080", cfg.ListenAddr)
}

func TestLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forum.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"sections_page_size: 5\ntopics_page_size: 25\njwt_secret: s3cret\nlisten_addr: \":9090\"\n"), 0o644))

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.SectionsPageSize)
	assert.Equal(t, 25, cfg.TopicsPageSize)
	assert.Equal(t, 10, cfg.CommentsPageSize) // default survives a sparse file
	assert.Equal(t, "s3cret", cfg.JwtSecret)
	assert.Equal(t, ":9090", cfg.ListenAddr)
}

func TestLoadAppConfigRejectsNonPositivePageSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forum.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topics_page_size: -1\n"), 0o644))

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.TopicsPageSize)
}

func TestLoadAppConfigMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forum.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topics_page_size: [broken\n"), 0o644))

	_, err := LoadAppConfig(path)
	assert.Error(t, err)
}
