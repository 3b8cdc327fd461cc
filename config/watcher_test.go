package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/genyleap/bitcoin-rpc/config"
	"github.com/genyleap/bitcoin-rpc/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	t.Run("The watcher loads the file it is pointed at", testWatcherLoadsFileItIsPointedAt)
	t.Run("The watcher notifies listeners on a rewrite", testWatcherNotifiesListenersOnRewrite)
	t.Run("Watching a missing file fails", testWatchingMissingFileFails)
}

func testWatcherLoadsFileItIsPointedAt(t *testing.T) {
	// given
	rootPath := t.TempDir()
	cfg := config.NewDefaultConfig()
	cfg.Node.User = "rpcuser"
	_, err := config.Write(rootPath, cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// when
	watcher, err := config.NewFromFile(ctx, logging.NewTestLogger(), rootPath)

	// then
	require.NoError(t, err)
	assert.Equal(t, "rpcuser", watcher.Get().Node.User)
}

func testWatcherNotifiesListenersOnRewrite(t *testing.T) {
	// given
	rootPath := t.TempDir()
	cfg := config.NewDefaultConfig()
	_, err := config.Write(rootPath, cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := config.NewFromFile(ctx, logging.NewTestLogger(), rootPath)
	require.NoError(t, err)

	updates := make(chan config.Config, 1)
	watcher.OnConfigUpdate(func(c config.Config) {
		select {
		case updates <- c:
		default:
		}
	})

	// when
	cfg.Node.Address = "http://node.example.com:18332/"
	_, err = config.Write(rootPath, cfg)
	require.NoError(t, err)

	// then
	select {
	case updated := <-updates:
		assert.Equal(t, "http://node.example.com:18332/", updated.Node.Address)
	case <-time.After(5 * time.Second):
		t.Fatal("the watcher did not notify the listener in time")
	}
}

func testWatchingMissingFileFails(t *testing.T) {
	// given
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// when
	watcher, err := config.NewFromFile(ctx, logging.NewTestLogger(), t.TempDir())

	// then
	require.Error(t, err)
	assert.Nil(t, watcher)
}
