package logger

import (
	"testing"

	"github.com/Layr-Labs/txflow-go/pkg/orchestrator"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(&LoggerConfig{Debug: true})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = NewLogger(&LoggerConfig{Console: true})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLogger_KeepsCallerOptions(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l, err := NewLogger(&LoggerConfig{}, zap.WrapCore(func(zapcore.Core) zapcore.Core { return core }))
	require.NoError(t, err)

	l.Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.True(t, logs.All()[0].Caller.Defined)
}

func TestEventReporter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	report := EventReporter(zap.New(core), zap.String("operationId", "op-1"))
	hash := common.HexToHash("0xabc")

	report(orchestrator.Event{Tag: orchestrator.EventSendTrade, TxHash: hash})
	report(orchestrator.Event{Tag: orchestrator.EventRejected})

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "send_trade", fields["event"])
	assert.Equal(t, hash.Hex(), fields["txHash"])
	assert.Equal(t, "op-1", fields["operationId"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	fields = entries[1].ContextMap()
	assert.Equal(t, "rejected", fields["event"])
	assert.NotContains(t, fields, "txHash")
}
