//go:build !boundedalloc && !noalloc

package storage

import "strings"

// Growable is the default tier: a strings.Builder-backed value with no
// capacity limit beyond what the input itself carries. Used unless the
// module is built with -tags boundedalloc or -tags noalloc.
type Growable struct {
	b strings.Builder
}

// NewText constructs the default tier's Text implementation for field.
// field is accepted for signature parity with the other two tiers; the
// default tier ignores it.
func NewText(field string) Text {
	return &Growable{}
}

func (g *Growable) Set(s string) error {
	g.b.Reset()
	g.b.WriteString(s)
	return nil
}

func (g *Growable) String() string {
	return g.b.String()
}

func (g *Growable) Len() int {
	return len([]rune(g.b.String()))
}
