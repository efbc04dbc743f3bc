package frameloop

// Key identifies the keys the loop reacts to. Everything else arrives as KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyEnter
)

// Event is one discrete input event returned by Window.PollEvents.
type Event interface{}

// KeyPress is reported once per physical press. Releases and repeats are not events.
type KeyPress struct {
	Key Key
}
