package cmd_test

import (
	"os"
	"testing"

	cmd "github.com/genyleap/bitcoin-rpc/cmd/bitcoin-rpc/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	t.Run("Initialising the configuration succeeds", testInitialisingConfigurationSucceeds)
	t.Run("Initialising twice without force fails", testInitialisingTwiceWithoutForceFails)
	t.Run("Forcing the initialisation overwrites the file", testForcingInitialisationOverwritesFile)
}

func testInitialisingConfigurationSucceeds(t *testing.T) {
	// given
	home := t.TempDir()
	f := &cmd.InitFlags{Force: false}

	// when
	resp, err := cmd.Init(home, f)

	// then
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.FileExists(t, resp.ConfigFilePath)
}

func testInitialisingTwiceWithoutForceFails(t *testing.T) {
	// given
	home := t.TempDir()
	f := &cmd.InitFlags{Force: false}

	// when
	_, err := cmd.Init(home, f)

	// then
	require.NoError(t, err)

	// when
	resp, err := cmd.Init(home, f)

	// then
	require.Error(t, err)
	assert.Nil(t, resp)
}

func testForcingInitialisationOverwritesFile(t *testing.T) {
	// given
	home := t.TempDir()

	// when
	first, err := cmd.Init(home, &cmd.InitFlags{Force: false})

	// then
	require.NoError(t, err)

	// given a manual edit of the file
	require.NoError(t, os.WriteFile(first.ConfigFilePath, []byte("broken = true\n"), 0o600))

	// when
	second, err := cmd.Init(home, &cmd.InitFlags{Force: true})

	// then
	require.NoError(t, err)
	assert.Equal(t, first.ConfigFilePath, second.ConfigFilePath)

	content, err := os.ReadFile(second.ConfigFilePath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "broken")
}
