package builder

import "strings"

// House is the product: an ordered list of constructed parts.
type House struct {
	parts []string
}

// add appends a part in construction order.
func (h *House) add(part string) {
	h.parts = append(h.parts, part)
}

// Parts returns the parts in construction order. The slice is a copy.
func (h *House) Parts() []string {
	parts := make([]string, len(h.parts))
	copy(parts, h.parts)
	return parts
}

// Summary returns a one-line description of the house.
func (h *House) Summary() string {
	if len(h.parts) == 0 {
		return "an empty lot"
	}
	return "a house with " + strings.Join(h.parts, ", ")
}
