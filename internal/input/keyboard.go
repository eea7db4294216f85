package input

import "strings"

// keyDirs maps symbolic key names (lower-case) to directions. Arrows and WASD
// are aliases.
var keyDirs = map[string]Dir{
	"arrowup":    DirUp,
	"w":          DirUp,
	"arrowdown":  DirDown,
	"s":          DirDown,
	"arrowleft":  DirLeft,
	"a":          DirLeft,
	"arrowright": DirRight,
	"d":          DirRight,
}

const resetKey = "r"

// Keyboard tracks held keys from key-down/key-up events.
type Keyboard struct {
	held  map[string]bool
	reset bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{held: map[string]bool{}}
}

// NormalizeKey lower-cases a key name so "ArrowUp", "arrowup" and "W"/"w" match.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// KeyDown reports whether the key is one the game uses.
func (k *Keyboard) KeyDown(name string) bool {
	name = NormalizeKey(name)
	if name == resetKey {
		k.reset = true
		return true
	}
	if _, ok := keyDirs[name]; !ok {
		return false
	}
	k.held[name] = true
	return true
}

func (k *Keyboard) KeyUp(name string) {
	delete(k.held, NormalizeKey(name))
}

// Release drops every held key, e.g. when the window loses focus.
func (k *Keyboard) Release() {
	for name := range k.held {
		delete(k.held, name)
	}
}

func (k *Keyboard) dirs() dirs {
	var d dirs
	for name := range k.held {
		d.set(keyDirs[name], true)
	}
	return d
}

func (k *Keyboard) takeReset() bool {
	r := k.reset
	k.reset = false
	return r
}
