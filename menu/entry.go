package menu

import (
	"io"
	"strings"
)

// Runner runs one demo, writing its output to w.
type Runner func(w io.Writer)

// Entry is one selectable item of the menu.
type Entry struct {
	// Key is what the user types to pick the entry.
	Key string
	// Title is shown next to the key.
	Title string
	Run   Runner
}

// matches reports whether name selects e, either by key or by title.
// Titles compare case-insensitively and ignore spaces, dashes and underscores,
// so "abstract-factory" selects "Abstract Factory".
func (e Entry) matches(name string) bool {
	name = strings.TrimSpace(name)
	if name == e.Key {
		return true
	}
	return normalize(name) == normalize(e.Title)
}

var titleReplacer = strings.NewReplacer(" ", "", "-", "", "_", "")

func normalize(s string) string {
	return strings.ToLower(titleReplacer.Replace(s))
}
