package guid

import (
	"fmt"
)

// Data is the raw 16-byte identifier payload.
type Data [16]byte

// dashPositions are the string indices holding the group separators in the
// canonical 8-4-4-4-12 layout.
var dashPositions = [4]int{8, 13, 18, 23}

// String renders the canonical form: 32 uppercase hex digits grouped
// 8-4-4-4-12, 36 characters total.
func (d Data) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%04X-%012X",
		d[0:4], d[4:6], d[6:8], d[8:10], d[10:16])
}

// Parse decodes a canonical GUID string back into its 16 bytes. Only the
// exact canonical form is accepted: 36 characters, dashes at the 8-4-4-4-12
// group boundaries, uppercase hex digits everywhere else.
func Parse(s string) (Data, error) {
	var d Data
	if len(s) != 36 {
		return Data{}, fmt.Errorf("guid: invalid length %d, want 36", len(s))
	}
	for _, p := range dashPositions {
		if s[p] != '-' {
			return Data{}, fmt.Errorf("guid: expected '-' at position %d, got %q", p, s[p])
		}
	}
	j := 0
	for i := 0; i < len(s); i += 2 {
		if s[i] == '-' {
			i++
		}
		hi := hexVal(s[i])
		lo := hexVal(s[i+1])
		if hi < 0 || lo < 0 {
			return Data{}, fmt.Errorf("guid: invalid hex digit at position %d", i)
		}
		d[j] = byte(hi<<4 | lo)
		j++
	}
	return d, nil
}

// IsValid reports whether s is a canonical GUID string.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// hexVal decodes one uppercase hex digit, -1 if c is not one.
func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
