package storage

import (
	"log/slog"
	"sync/atomic"
)

// Connectivity is the process-wide flag deciding which backend serves account
// and roster operations. It starts from the startup ping result and flips to
// disconnected the first time the durable backend reports it cannot be
// reached. There is no automatic reconnection: records written while degraded
// are never reconciled into the durable store, so flipping back silently would
// split the dataset. The flag stays down until restart.
type Connectivity struct {
	connected atomic.Bool
	logger    *slog.Logger
	notify    func(connected bool)
}

// NewConnectivity seeds the flag. notify, when non-nil, observes every state
// change (used to drive the fallback gauge).
func NewConnectivity(connected bool, logger *slog.Logger, notify func(connected bool)) *Connectivity {
	c := &Connectivity{logger: logger, notify: notify}
	c.connected.Store(connected)
	if notify != nil {
		notify(connected)
	}
	return c
}

// Connected reports whether the durable backend is considered reachable.
func (c *Connectivity) Connected() bool {
	return c.connected.Load()
}

// MarkDisconnected records that the durable backend failed. Only the first
// caller logs; concurrent requests hitting the same outage race on the swap.
func (c *Connectivity) MarkDisconnected(cause error) {
	if !c.connected.CompareAndSwap(true, false) {
		return
	}
	c.logger.Warn("durable store unreachable, switching to in-memory fallback",
		"error", cause,
		"durability", "records created from now on are lost on restart",
	)
	if c.notify != nil {
		c.notify(false)
	}
}
