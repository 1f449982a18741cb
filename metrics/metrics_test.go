package metrics

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func testutilCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	return testutil.ToFloat64(c)
}

func testutilCounterVecValue(t *testing.T, c *prometheus.CounterVec, label string) float64 {
	t.Helper()
	return testutil.ToFloat64(c.WithLabelValues(label))
}

func TestStartExposesMetricsEndpoint(t *testing.T) {
	l := Start(":0")
	require.NotNil(t, l)
	defer l.Close()

	resp, err := http.Get(fmt.Sprintf("http://%s/metrics", l.Addr().String()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestObserveTableBuildAccumulatesMonotonically(t *testing.T) {
	before := testutilCounterValue(t, TableBuildPointsComputed)

	progress, done := ObserveTableBuild()
	progress(10)
	progress(25)
	done()

	after := testutilCounterValue(t, TableBuildPointsComputed)
	require.Equal(t, float64(25), after-before)
}

func TestObserveReplyDecryptLabelsOutcome(t *testing.T) {
	ObserveReplyDecrypt(nil)
	ObserveReplyDecrypt(fmt.Errorf("boom"))

	okBefore := testutilCounterVecValue(t, ReplyDecryptOperations, "ok")
	badBefore := testutilCounterVecValue(t, ReplyDecryptOperations, "undecryptable")
	require.GreaterOrEqual(t, okBefore, float64(1))
	require.GreaterOrEqual(t, badBefore, float64(1))
}
