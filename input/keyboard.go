package input

import "github.com/veandco/go-sdl2/sdl"

// KeyboardState is a snapshot of held keys indexed by scancode
type KeyboardState struct {
	keys []uint8
}

// PollKeyboard returns the current keyboard state.
//
// SDL updates the state when events are pumped, so this should be called after
// the frame's events were handled.
func PollKeyboard() KeyboardState {

	// SDL owns the array and overwrites it on every pump, so copy it to get a real snapshot
	sdlKeys := sdl.GetKeyboardState()
	keys := make([]uint8, len(sdlKeys))
	copy(keys, sdlKeys)

	return KeyboardState{keys: keys}
}

// NewKeyboardState creates a state from an array in the same format as sdl.GetKeyboardState,
// where keys[scancode] is 1 if the key is held
func NewKeyboardState(keys []uint8) KeyboardState {
	return KeyboardState{keys: keys}
}

func (ks KeyboardState) KeyDown(sc sdl.Scancode) bool {
	return int(sc) < len(ks.keys) && ks.keys[sc] != 0
}
