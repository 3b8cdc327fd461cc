package logging_test

import (
	"testing"

	"github.com/genyleap/bitcoin-rpc/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Run("Parsing a known level succeeds", testParsingKnownLevelSucceeds)
	t.Run("Parsing an unknown level fails", testParsingUnknownLevelFails)
}

func testParsingKnownLevelSucceeds(t *testing.T) {
	tcs := []struct {
		name     string
		level    string
		expected logging.Level
	}{
		{name: "debug", level: "debug", expected: logging.DebugLevel},
		{name: "info", level: "info", expected: logging.InfoLevel},
		{name: "warn", level: "warn", expected: logging.WarnLevel},
		{name: "error", level: "error", expected: logging.ErrorLevel},
		{name: "mixed case", level: "Info", expected: logging.InfoLevel},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// when
			level, err := logging.ParseLevel(tc.level)

			// then
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}

func testParsingUnknownLevelFails(t *testing.T) {
	// when
	_, err := logging.ParseLevel("loud")

	// then
	require.Error(t, err)
}

func TestLogger(t *testing.T) {
	t.Run("Naming a logger nests the names", testNamingLoggerNestsNames)
	t.Run("Setting the level changes what is enabled", testSettingLevelChangesWhatIsEnabled)
}

func testNamingLoggerNestsNames(t *testing.T) {
	// given
	log := logging.NewTestLogger()

	// when
	named := log.Named("bitcoind")
	nested := named.Named("sender")

	// then
	assert.Equal(t, "bitcoind", named.GetName())
	assert.Equal(t, "bitcoind.sender", nested.GetName())
}

func testSettingLevelChangesWhatIsEnabled(t *testing.T) {
	// given
	log := logging.NewTestLogger()

	// when
	log.SetLevel(logging.DebugLevel)

	// then
	assert.True(t, log.IsDebug())

	// when
	log.SetLevel(logging.WarnLevel)

	// then
	assert.False(t, log.IsDebug())
	assert.Equal(t, logging.WarnLevel, log.GetLevel())
}
