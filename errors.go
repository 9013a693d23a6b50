package fractal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidDepth is the sentinel wrapped by every *DepthError.
var ErrInvalidDepth = errors.New("invalid depth")

// DepthError reports a requested depth that is not a number, is negative, or
// exceeds the maximum for its kind. Its message names the permitted range and
// is meant to be shown to the user as-is.
type DepthError struct {
	Kind Kind
	// Input is the raw text the depth was parsed from, if any.
	Input string
	// Depth is the parsed depth. Meaningless when NotANumber is set.
	Depth      int
	NotANumber bool
}

// Max returns the largest depth accepted for the error's kind.
func (e *DepthError) Max() int {
	return e.Kind.MaxDepth()
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("please enter a depth between 0 and %d", e.Max())
}

func (e *DepthError) Unwrap() error {
	return ErrInvalidDepth
}

// ValidateDepth returns a *DepthError if depth is outside [0, kind.MaxDepth()].
func ValidateDepth(kind Kind, depth int) error {
	if depth < 0 || depth > kind.MaxDepth() {
		return &DepthError{Kind: kind, Input: strconv.Itoa(depth), Depth: depth}
	}
	return nil
}

// ParseDepth reads a base-10 integer prefix from s. Leading whitespace and a
// single sign are accepted and anything after the digits is ignored, so
// "3", " 4 ", "5px" and "2.9" parse as 3, 4, 5 and 2. ok is false when no
// digits follow the optional sign. Values too large for an int saturate.
func ParseDepth(s string) (depth int, ok bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only a range error is possible on a pure digit string.
		n = math.MaxInt
	}
	if neg {
		n = -n
	}
	return n, true
}
