package keys

import (
	"crypto/rand"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// ShapeKey produces a canonical key for a set of cell offsets.
// Behavior: translates the cells so the smallest x and y are zero, sorts them
// by (y, x) and joins them as "x,y" pairs separated by semicolons. Two shapes
// with the same cells produce the same key regardless of input order.
func ShapeKey(cells [][2]int) string {
	if len(cells) == 0 {
		return ""
	}
	minX, minY := cells[0][0], cells[0][1]
	for _, c := range cells[1:] {
		if c[0] < minX {
			minX = c[0]
		}
		if c[1] < minY {
			minY = c[1]
		}
	}
	norm := make([][2]int, len(cells))
	for i, c := range cells {
		norm[i] = [2]int{c[0] - minX, c[1] - minY}
	}
	sort.Slice(norm, func(i, j int) bool {
		if norm[i][1] != norm[j][1] {
			return norm[i][1] < norm[j][1]
		}
		return norm[i][0] < norm[j][0]
	})
	parts := make([]string, len(norm))
	for i, c := range norm {
		parts[i] = strconv.Itoa(c[0]) + "," + strconv.Itoa(c[1])
	}
	return strings.Join(parts, ";")
}

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the number of characters in a game code.
const CodeLength = 8

// NewGameCode creates a short alphanumeric code used to address a game.
func NewGameCode() string {
	b := make([]byte, CodeLength)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS source is unavailable
			panic(err)
		}
		b[i] = codeCharset[n.Int64()]
	}
	return string(b)
}

// NormalizeGameCode upper-cases and trims a user supplied game code.
func NormalizeGameCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidGameCode reports whether s is a well-formed (normalized) game code.
func ValidGameCode(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(codeCharset, rune(s[i])) {
			return false
		}
	}
	return true
}
