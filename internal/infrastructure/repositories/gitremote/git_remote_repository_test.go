//go:build unit

package gitremote_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pingcode/internal/infrastructure/repositories/gitremote"
)

func initRepository(t *testing.T, remotes map[string][]string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	for name, urls := range remotes {
		_, err = repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: urls})
		require.NoError(t, err)
	}
	return dir
}

func TestGitRemoteRepositoryListRemotes(t *testing.T) {
	t.Parallel()

	t.Run("should list origin first and the rest by name", func(t *testing.T) {
		t.Parallel()

		// given
		dir := initRepository(t, map[string][]string{
			"upstream": {"https://open.pingcode.com/team/myrepo.git"},
			"origin":   {"git@open.pingcode.com:alice/myrepo.git"},
			"backup":   {"https://github.com/alice/myrepo.git"},
		})
		repository := gitremote.NewGitRemoteRepository()

		// when
		remotes, err := repository.ListRemotes(context.Background(), dir)

		// then
		require.NoError(t, err)
		require.Len(t, remotes, 3)
		assert.Equal(t, "origin", remotes[0].Name)
		assert.Equal(t, []string{"git@open.pingcode.com:alice/myrepo.git"}, remotes[0].URLs)
		assert.Equal(t, "backup", remotes[1].Name)
		assert.Equal(t, "upstream", remotes[2].Name)
	})

	t.Run("should find the checkout from a subdirectory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := initRepository(t, map[string][]string{
			"origin": {"https://open.pingcode.com/alice/myrepo.git"},
		})
		subdir := filepath.Join(dir, "src", "pkg")
		require.NoError(t, os.MkdirAll(subdir, 0o755))
		repository := gitremote.NewGitRemoteRepository()

		// when
		remotes, err := repository.ListRemotes(context.Background(), subdir)

		// then
		require.NoError(t, err)
		require.Len(t, remotes, 1)
		assert.Equal(t, "origin", remotes[0].Name)
	})

	t.Run("should return an empty list for a repository without remotes", func(t *testing.T) {
		t.Parallel()

		// given
		dir := initRepository(t, nil)
		repository := gitremote.NewGitRemoteRepository()

		// when
		remotes, err := repository.ListRemotes(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Empty(t, remotes)
	})

	t.Run("should fail outside a git checkout", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repository := gitremote.NewGitRemoteRepository()

		// when
		_, err := repository.ListRemotes(context.Background(), dir)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open git repository")
	})
}
