package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallObserver(t *testing.T) {
	t.Run("Observing a call updates the instruments", testObservingCallUpdatesInstruments)
	t.Run("Registering the instruments twice fails", testRegisteringInstrumentsTwiceFails)
}

func testObservingCallUpdatesInstruments(t *testing.T) {
	// given
	registry := prometheus.NewRegistry()
	observer, err := NewCallObserver(registry)
	require.NoError(t, err)

	// when
	observer.ObserveCall("getblockcount", "ok", 150*time.Millisecond)
	observer.ObserveCall("getblockcount", "ok", 50*time.Millisecond)
	observer.ObserveCall("getblock", "remote", 10*time.Millisecond)

	// then
	assert.Equal(t, 2.0, testutil.ToFloat64(observer.calls.WithLabelValues("getblockcount", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(observer.calls.WithLabelValues("getblock", "remote")))
	assert.Equal(t, 2, testutil.CollectAndCount(observer.durations))
}

func testRegisteringInstrumentsTwiceFails(t *testing.T) {
	// given
	registry := prometheus.NewRegistry()
	_, err := NewCallObserver(registry)
	require.NoError(t, err)

	// when
	observer, err := NewCallObserver(registry)

	// then
	require.Error(t, err)
	assert.Nil(t, observer)
}
