package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Layr-Labs/txflow-go/pkg/orchestrator"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_InitializesAllTags(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	assert.Equal(t, len(orchestrator.AllEventTags), testutil.CollectAndCount(m.events))
	for _, tag := range orchestrator.AllEventTags {
		assert.Equal(t, float64(0), testutil.ToFloat64(m.events.WithLabelValues(string(tag))))
	}
}

func TestReporter(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	var forwarded []orchestrator.Event
	report := m.Reporter(func(e orchestrator.Event) { forwarded = append(forwarded, e) })
	txA := common.HexToHash("0xaa")
	txB := common.HexToHash("0xbb")

	report(orchestrator.Event{Tag: orchestrator.EventSendWrap, TxHash: txA})
	report(orchestrator.Event{Tag: orchestrator.EventSendTrade, TxHash: txB})
	assert.Equal(t, float64(2), testutil.ToFloat64(m.inFlight))

	report(orchestrator.Event{Tag: orchestrator.EventMinedWrap, TxHash: txA})
	report(orchestrator.Event{Tag: orchestrator.EventFailed, TxHash: txB})
	report(orchestrator.Event{Tag: orchestrator.EventRejected})

	assert.Equal(t, float64(0), testutil.ToFloat64(m.inFlight))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.events.WithLabelValues("send_wrap")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.events.WithLabelValues("failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.events.WithLabelValues("rejected")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.events.WithLabelValues("mined_trade")))
	assert.Len(t, forwarded, 5)
}

func TestReporter_NilNext(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)

	m.Reporter(nil)(orchestrator.Event{Tag: orchestrator.EventBadTx})

	assert.Equal(t, float64(1), testutil.ToFloat64(m.events.WithLabelValues("bad_tx")))
}

func TestPush(t *testing.T) {
	var path, body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	m, err := NewMetrics()
	require.NoError(t, err)
	m.Reporter(nil)(orchestrator.Event{Tag: orchestrator.EventRejected})

	err = m.Push(context.Background(), server.URL, "txflow", map[string]string{"command": "approve"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/metrics/job/txflow"), path)
	assert.Contains(t, path, "/command/approve")
	assert.NotEmpty(t, body)
}
