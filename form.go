package fractal

import "strconv"

// Form holds the state of the depth input and the kind selector.
type Form struct {
	Kind Kind
	// Depth is the raw text of the depth input.
	Depth string
	// Max is the largest depth the input offers for Kind.
	Max int
}

// NewForm returns a form with the given selection.
func NewForm(kind Kind, depth int) *Form {
	return &Form{Kind: kind, Depth: strconv.Itoa(depth), Max: kind.MaxDepth()}
}

// SelectKind switches the selected kind, updates Max to match it and clamps
// a numeric depth above the new maximum down to it. Non-numeric text is left
// as is; it will be rejected on Submit.
func (f *Form) SelectKind(k Kind) {
	f.Kind = k
	f.Max = k.MaxDepth()
	if d, ok := ParseDepth(f.Depth); ok && d > f.Max {
		f.Depth = strconv.Itoa(f.Max)
	}
}

// Type appends s to the depth text.
func (f *Form) Type(s string) {
	f.Depth += s
}

// Backspace removes the last character of the depth text.
func (f *Form) Backspace() {
	if f.Depth == "" {
		return
	}
	r := []rune(f.Depth)
	f.Depth = string(r[:len(r)-1])
}

// Submit draws the form's selection with r.
func (f *Form) Submit(r *Renderer) error {
	return r.DrawInput(f.Kind, f.Depth)
}
