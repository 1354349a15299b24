package factory

import (
	"fmt"
	"image"

	"github.com/borkshop/spacetime/internal/ecs"
)

// SignalKind names a kind of feedback signal.
type SignalKind uint8

// Signal kinds.
const (
	PlaceSignal SignalKind = iota
	RemoveSignal
	ToggleSignal
	ProduceSignal
	InvalidateSignal
	GameOverSignal
)

var signalNames = [...]string{"Place", "Remove", "Toggle", "Produce", "Invalidate", "GameOver"}

func (k SignalKind) String() string {
	if int(k) < len(signalNames) {
		return signalNames[k]
	}
	return fmt.Sprintf("SignalKind(%d)", uint8(k))
}

// Signal tells observers something happened at a tile.
type Signal struct {
	Kind   SignalKind
	Pos    image.Point
	Entity ecs.Entity
}

func (sig Signal) String() string { return fmt.Sprintf("%v@%v", sig.Kind, sig.Pos) }

// Subscribe registers a handler for every signal. Handlers run during Flush,
// in registration order.
func (f *Factory) Subscribe(handler func(Signal)) {
	f.subs = append(f.subs, handler)
}

func (f *Factory) raise(sig Signal) {
	f.signals = append(f.signals, sig)
}

// Flush delivers queued signals to subscribers; Frame calls it last.
func (f *Factory) Flush() {
	for len(f.signals) > 0 {
		sigs := f.signals
		f.signals = nil
		for _, sig := range sigs {
			for _, sub := range f.subs {
				sub(sig)
			}
		}
	}
}
