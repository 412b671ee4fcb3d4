package synccontribution

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
)

// BitlistFromString parses a string of '0' and '1' characters, position i of
// the string being bit i of the returned bitlist.
func BitlistFromString(s string) (bitfield.Bitlist, error) {
	b := bitfield.NewBitlist(uint64(len(s)))
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			b.SetBitAt(uint64(i), true)
		default:
			return nil, errors.Errorf("invalid bit %q at position %d", c, i)
		}
	}
	return b, nil
}

// BitlistToString renders a bitlist as '0' and '1' characters. A nil bitlist
// renders as the empty string.
func BitlistToString(b bitfield.Bitlist) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(b.Len()))
	for i := uint64(0); i < b.Len(); i++ {
		if b.BitAt(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ExpandSubcommitteeBits places subcommittee-wide participation bits into a
// bitlist spanning the whole committee, at offset subIndex*bits.Len().
func ExpandSubcommitteeBits(bits bitfield.Bitfield, subIndex, subnetCount uint64) (bitfield.Bitlist, error) {
	if subIndex >= subnetCount {
		return nil, errors.Errorf("subcommittee index %d out of range, subnet count %d", subIndex, subnetCount)
	}
	width := bits.Len()
	out := bitfield.NewBitlist(width * subnetCount)
	for _, i := range bits.BitIndices() {
		out.SetBitAt(uint64(i)+width*subIndex, true)
	}
	return out, nil
}
