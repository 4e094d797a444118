// pkg/render/keys.go
package render

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-lander/pkg/control"
)

// holdTimeout is how long a key counts as held after its last press.
// Terminals report no key releases, only presses and auto-repeats.
const holdTimeout = 250 * time.Millisecond

// KeyTracker turns terminal key presses into held buttons
type KeyTracker struct {
	mu      sync.Mutex
	pressed map[control.Button]time.Time
	now     func() time.Time
}

// NewKeyTracker creates a tracker using the wall clock
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{
		pressed: make(map[control.Button]time.Time),
		now:     time.Now,
	}
}

// ButtonFor maps a key to the logical button it drives
func ButtonFor(key tcell.Key, r rune) (control.Button, bool) {
	switch key {
	case tcell.KeyLeft:
		return control.TurnLeft, true
	case tcell.KeyRight:
		return control.TurnRight, true
	case tcell.KeyRune:
		switch r {
		case 'a', 'A':
			return control.TurnLeft, true
		case 'd', 'D':
			return control.TurnRight, true
		case ' ':
			return control.ThrustButton, true
		}
	}
	return 0, false
}

// HandleEvent records a key press. It returns false for unbound keys.
func (k *KeyTracker) HandleEvent(ev *tcell.EventKey) bool {
	return k.Press(ev.Key(), ev.Rune())
}

// Press records a press of key
func (k *KeyTracker) Press(key tcell.Key, r rune) bool {
	b, ok := ButtonFor(key, r)
	if !ok {
		return false
	}
	k.mu.Lock()
	k.pressed[b] = k.now()
	k.mu.Unlock()
	return true
}

// Held implements control.Buttons
func (k *KeyTracker) Held(b control.Button) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	at, ok := k.pressed[b]
	if !ok {
		return false
	}
	if k.now().Sub(at) > holdTimeout {
		delete(k.pressed, b)
		return false
	}
	return true
}
