package block

import (
	"fmt"
	"strings"
)

// Variant identifies the family a block was built from.
type Variant int

const (
	// Rectangle covers squares and rectangles up to MaxRectangleEdge on a side:
	//
	//	▅   ▅ ▅   ▅ ▅   ▅ ▅ ▅   ▅ ▅ ▅
	//	    ▅ ▅   ▅ ▅   ▅ ▅ ▅   ▅ ▅ ▅
	//	          ▅ ▅           ▅ ▅ ▅
	//
	// Lines can be built this way too, but prefer Line.
	Rectangle Variant = iota

	// Tee is the fixed four cell T shape:
	//
	//	  ▅
	//	▅ ▅ ▅
	Tee

	// Diagonal is a run of cells touching only at the corners.
	Diagonal

	// Elle is an L shape with two arms meeting at the origin.
	Elle

	// Line is a single row of cells:
	//
	//	▅ ▅   ▅ ▅ ▅   ▅ ▅ ▅ ▅   ▅ ▅ ▅ ▅ ▅
	Line
)

// Variants lists every variant in declaration order.
var Variants = []Variant{Rectangle, Tee, Diagonal, Elle, Line}

var variantNames = map[Variant]string{
	Rectangle: "Rectangle",
	Tee:       "Tee",
	Diagonal:  "Diagonal",
	Elle:      "Elle",
	Line:      "Line",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant resolves a variant name case-insensitively.
func ParseVariant(s string) (Variant, error) {
	for v, name := range variantNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown block variant %q", s)
}

// MarshalText encodes the variant as its lower-case name.
func (v Variant) MarshalText() ([]byte, error) {
	name, ok := variantNames[v]
	if !ok {
		return nil, fmt.Errorf("unknown block variant %d", int(v))
	}
	return []byte(strings.ToLower(name)), nil
}

// UnmarshalText decodes a variant name.
func (v *Variant) UnmarshalText(b []byte) error {
	parsed, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
