//go:build noalloc

package storage

// inlineCapacity is the fixed backing size for the noalloc tier. Fields
// whose tabulated maximum exceeds it (e.g. safety_related_text) are
// capped at inlineCapacity rather than grown.
const inlineCapacity = 127

// Inline is the noalloc tier: a fixed [127]byte array plus a length,
// never touching the heap after construction. Capacity exceedance is an
// explicit Set error, never truncation or a panic (spec §9).
type Inline struct {
	field string
	cap   int
	buf   [inlineCapacity]byte
	n     int
}

// NewText constructs the noalloc tier's Text implementation. The
// effective capacity is the smaller of the field's tabulated maximum
// and inlineCapacity.
func NewText(field string) Text {
	capacity := Capacity(field)
	if capacity == 0 || capacity > inlineCapacity {
		capacity = inlineCapacity
	}
	return &Inline{field: field, cap: capacity}
}

func (i *Inline) Set(s string) error {
	if len(s) > i.cap {
		return &ErrCapacityExceeded{Field: i.field, Capacity: i.cap, Got: len(s)}
	}
	i.n = copy(i.buf[:], s)
	return nil
}

func (i *Inline) String() string {
	return string(i.buf[:i.n])
}

func (i *Inline) Len() int {
	return i.n
}
