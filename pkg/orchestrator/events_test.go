package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTag_IsTerminal(t *testing.T) {
	terminal := map[EventTag]bool{
		EventRejected:     true,
		EventBadTx:        true,
		EventFailed:       true,
		EventMinedApprove: true,
		EventMinedWrap:    true,
		EventMinedUnwrap:  true,
		EventMinedTrade:   true,
	}
	for _, tag := range AllEventTags {
		assert.Equal(t, terminal[tag], tag.IsTerminal(), string(tag))
	}
}

func TestTee(t *testing.T) {
	first := &eventRecorder{}
	second := &eventRecorder{}

	report := Tee(first.report, nil, second.report)
	report(Event{Tag: EventSendWrap, TxHash: txA})

	assert.Equal(t, []EventTag{EventSendWrap}, first.tags())
	assert.Equal(t, []EventTag{EventSendWrap}, second.tags())
	assert.True(t, first.events[0].HasTxHash())
	assert.False(t, Event{Tag: EventRejected}.HasTxHash())
}
