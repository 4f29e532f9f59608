package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/net/html"
)

// IsWhitespaceOnly reports whether markup renders no visible text.
// It is true for empty content, bare whitespace, and markup whose text
// content is entirely whitespace.
func IsWhitespaceOnly(content string) bool {
	if strings.TrimSpace(content) == "" {
		return true
	}
	frag, err := ParseFragment(content)
	if err != nil {
		return false
	}
	// Structural elements (images, rules, list scaffolding) count as
	// visible even without text.
	for _, n := range frag.Nodes() {
		if n.Type == html.ElementNode {
			return false
		}
	}
	return strings.TrimSpace(frag.PlainText()) == ""
}

// SplitPoints returns the byte offsets at which s may be split without
// breaking a word. Each offset is the start of a word that follows
// whitespace, so the text before an offset keeps its trailing spaces
// and the text from the offset onward begins with a word.
func SplitPoints(s string) []int {
	var points []int
	offset := 0
	prevSpace := false
	state := -1
	rest := s
	for len(rest) > 0 {
		var seg string
		seg, rest, state = uniseg.FirstWordInString(rest, state)
		space := segmentIsSpace(seg)
		if offset > 0 && prevSpace && !space {
			points = append(points, offset)
		}
		offset += len(seg)
		prevSpace = space
	}
	return points
}

func segmentIsSpace(seg string) bool {
	for _, r := range seg {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return len(seg) > 0
}

// RuneOffsetToByte converts a codepoint offset in s to a byte offset.
// Offsets beyond the end of s clamp to len(s).
func RuneOffsetToByte(s string, runeOff int) int {
	if runeOff <= 0 {
		return 0
	}
	count := 0
	for i := range s {
		if count == runeOff {
			return i
		}
		count++
	}
	return len(s)
}

// RuneLen returns the number of codepoints in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
