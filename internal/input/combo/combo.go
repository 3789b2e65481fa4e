// Package combo parses hotkey strings such as "ctrl+shift+u".
package combo

import (
	"fmt"
	"strings"
)

// Modifier is a platform-neutral modifier name
type Modifier string

const (
	ModCtrl  Modifier = "ctrl"
	ModShift Modifier = "shift"
	ModAlt   Modifier = "alt"
	ModSuper Modifier = "super"
)

// Combo is a parsed hotkey: zero or more modifiers plus exactly one key
type Combo struct {
	Mods []Modifier
	Key  string
}

func (c Combo) String() string {
	parts := make([]string, 0, len(c.Mods)+1)
	for _, m := range c.Mods {
		parts = append(parts, string(m))
	}
	return strings.Join(append(parts, c.Key), "+")
}

var modifierAliases = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"cmd":     ModSuper,
	"command": ModSuper,
	"super":   ModSuper,
	"win":     ModSuper,
	"logo":    ModSuper,
}

var keyAliases = map[string]string{
	"return": "enter",
	"esc":    "escape",
}

// Parse parses a hotkey string like "ctrl+shift+space"
func Parse(s string) (Combo, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Combo{}, fmt.Errorf("empty hotkey string")
	}

	var c Combo
	seen := make(map[Modifier]bool)
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if mod, ok := modifierAliases[part]; ok {
			if !seen[mod] {
				c.Mods = append(c.Mods, mod)
				seen[mod] = true
			}
			continue
		}
		if c.Key != "" {
			return Combo{}, fmt.Errorf("multiple keys specified")
		}
		if alias, ok := keyAliases[part]; ok {
			part = alias
		}
		if !IsKey(part) {
			return Combo{}, fmt.Errorf("unknown key: %s", part)
		}
		c.Key = part
	}

	if c.Key == "" {
		return Combo{}, fmt.Errorf("no key specified")
	}
	return c, nil
}

// IsKey reports whether name is a key the listener can register
func IsKey(name string) bool {
	switch name {
	case "space", "enter", "tab", "escape":
		return true
	}
	if len(name) == 1 && (name[0] >= 'a' && name[0] <= 'z' || name[0] >= '0' && name[0] <= '9') {
		return true
	}
	if strings.HasPrefix(name, "f") {
		var n int
		if _, err := fmt.Sscanf(name, "f%d", &n); err == nil && fmt.Sprintf("f%d", n) == name {
			return n >= 1 && n <= 12
		}
	}
	return false
}
