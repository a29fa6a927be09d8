package cli

import (
	"sync"
	"time"
)

// notice is a message that clears itself after a TTL. A newer Flash
// replaces the message and restarts the countdown.
type notice struct {
	mu    sync.Mutex
	msg   string
	gen   uint64
	timer *time.Timer
}

func (n *notice) Flash(msg string, ttl time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	n.msg = msg
	n.timer = time.AfterFunc(ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.gen == gen {
			n.msg = ""
		}
	})
}

func (n *notice) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.msg
}

// Stop clears the message and cancels a pending expiry.
func (n *notice) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.gen++
	n.msg = ""
}
