package orchestrator

import "github.com/ethereum/go-ethereum/common"

// EventTag identifies a lifecycle transition reported to the caller.
type EventTag string

const (
	EventRejected     EventTag = "rejected"
	EventBadTx        EventTag = "bad_tx"
	EventSendApprove  EventTag = "send_approve"
	EventMinedApprove EventTag = "mined_approve"
	EventSendWrap     EventTag = "send_wrap"
	EventMinedWrap    EventTag = "mined_wrap"
	EventSendUnwrap   EventTag = "send_unwrap"
	EventMinedUnwrap  EventTag = "mined_unwrap"
	EventSendTrade    EventTag = "send_trade"
	EventMinedTrade   EventTag = "mined_trade"
	EventFailed       EventTag = "failed"
)

// AllEventTags is the closed vocabulary, in declaration order.
var AllEventTags = []EventTag{
	EventRejected,
	EventBadTx,
	EventSendApprove,
	EventMinedApprove,
	EventSendWrap,
	EventMinedWrap,
	EventSendUnwrap,
	EventMinedUnwrap,
	EventSendTrade,
	EventMinedTrade,
	EventFailed,
}

// IsTerminal reports whether the tag ends a lifecycle.
func (t EventTag) IsTerminal() bool {
	switch t {
	case EventRejected, EventBadTx, EventFailed,
		EventMinedApprove, EventMinedWrap, EventMinedUnwrap, EventMinedTrade:
		return true
	}
	return false
}

// Event is a single lifecycle notification.
type Event struct {
	Tag EventTag
	// TxHash is the zero hash for events emitted before submission
	TxHash common.Hash
}

// HasTxHash reports whether the event refers to a submitted transaction.
func (e Event) HasTxHash() bool {
	return e.TxHash != (common.Hash{})
}

// Reporter receives lifecycle events. It is called synchronously from the flow.
type Reporter func(event Event)

// Tee fans every event out to each non-nil reporter in order.
func Tee(reporters ...Reporter) Reporter {
	return func(event Event) {
		for _, r := range reporters {
			if r != nil {
				r(event)
			}
		}
	}
}

// flow names the send/mined tag pair of a submission flow.
type flow struct {
	name  string
	send  EventTag
	mined EventTag
}

var (
	approveFlow = flow{name: "approve", send: EventSendApprove, mined: EventMinedApprove}
	wrapFlow    = flow{name: "wrap", send: EventSendWrap, mined: EventMinedWrap}
	unwrapFlow  = flow{name: "unwrap", send: EventSendUnwrap, mined: EventMinedUnwrap}
	tradeFlow   = flow{name: "trade", send: EventSendTrade, mined: EventMinedTrade}
)
