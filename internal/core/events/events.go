// Package events is a small synchronous observer used to decouple game state
// mutations from whoever presents them (HUD, logs, the world rebuild on reset).
package events

// Code identifies the kind of event.
type Code int

const (
	ScoreChanged Code = iota + 1
	LivesChanged
	CameraChanged
	GameOver
	Reset
	FrogDied
	Crossed
	PowerupCollected

	maxCode
)

func (c Code) String() string {
	switch c {
	case ScoreChanged:
		return "score_changed"
	case LivesChanged:
		return "lives_changed"
	case CameraChanged:
		return "camera_changed"
	case GameOver:
		return "game_over"
	case Reset:
		return "reset"
	case FrogDied:
		return "frog_died"
	case Crossed:
		return "crossed"
	case PowerupCollected:
		return "powerup_collected"
	default:
		return "unknown"
	}
}

// Event carries the state values relevant to the change. Fields that do not
// apply to a code are left at their zero value.
type Event struct {
	Code   Code
	Score  int
	Lives  int
	Camera string
	Cause  string
}

// Handler is invoked for every fired event it is registered for.
// Should return true if handled; handled events are not passed on.
type Handler func(e Event) bool

type registered struct {
	listener any
	fn       Handler
}

// Bus dispatches events to registered handlers in registration order.
// It is not safe for concurrent use; it lives on the game loop goroutine.
type Bus struct {
	handlers [maxCode][]registered
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Register subscribes fn to code on behalf of listener. A listener may only
// register once per code; duplicates return false.
func (b *Bus) Register(code Code, listener any, fn Handler) bool {
	if code <= 0 || code >= maxCode || fn == nil {
		return false
	}
	for _, r := range b.handlers[code] {
		if r.listener == listener {
			return false
		}
	}
	b.handlers[code] = append(b.handlers[code], registered{listener: listener, fn: fn})
	return true
}

// Unregister removes listener's handler for code.
func (b *Bus) Unregister(code Code, listener any) bool {
	if code <= 0 || code >= maxCode {
		return false
	}
	list := b.handlers[code]
	for i, r := range list {
		if r.listener == listener {
			b.handlers[code] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Fire delivers e to its handlers. It returns true if a handler claimed it.
func (b *Bus) Fire(e Event) bool {
	if b == nil || e.Code <= 0 || e.Code >= maxCode {
		return false
	}
	for _, r := range b.handlers[e.Code] {
		if r.fn(e) {
			return true
		}
	}
	return false
}
