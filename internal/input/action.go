package input

// Action is a factory command bound to a key.
type Action uint8

// Actions.
const (
	NoAction Action = iota
	PlacePipe
	Remove
	Toggle
	Shop1
	Shop2
	Shop3
	Shop4
	Restart
	Quit
)

var actionNames = [...]string{
	"none", "place pipe", "remove", "toggle switch",
	"shop 1", "shop 2", "shop 3", "shop 4",
	"restart", "quit",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ShopSlot returns the zero-based shop slot of a ShopN action.
func (a Action) ShopSlot() (int, bool) {
	if a >= Shop1 && a <= Shop4 {
		return int(a - Shop1), true
	}
	return 0, false
}

// Binding ties a key rune to an action.
type Binding struct {
	Key    rune
	Action Action
}

// Bindings lists every action key in display order.
var Bindings = [...]Binding{
	{'p', PlacePipe},
	{'x', Remove},
	{' ', Toggle},
	{'1', Shop1},
	{'2', Shop2},
	{'3', Shop3},
	{'4', Shop4},
	{'R', Restart},
	{'Q', Quit},
}

// ParseAction maps a key rune to a factory command.
func ParseAction(ch rune) (Action, bool) {
	for _, b := range Bindings {
		if b.Key == ch {
			return b.Action, true
		}
	}
	return NoAction, false
}

// Key returns the rune bound to an action.
func (a Action) Key() (rune, bool) {
	for _, b := range Bindings {
		if b.Action == a {
			return b.Key, true
		}
	}
	return 0, false
}
