package glob

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type opKind int

const (
	opLiteral opKind = iota // literal run of characters
	opStar                  // "*": any run without a separator
	opAnySpan               // "**": any run, separators included
	opDirs                  // "**/": zero or more whole directory segments
	opOne                   // "?": one character, not a separator
	opClass                 // "[seq]" / "[!seq]"
	opAlt                   // "{a,b,...}"
	opIntRange              // "{n1..n2}"
)

type op struct {
	kind    opKind
	literal string   // opLiteral
	class   class    // opClass
	alts    [][]op   // opAlt, each alternative compiled as a sub-program
	lo, hi  int      // opIntRange, inclusive
}

type class struct {
	negated bool
	chars   []rune
	ranges  [][2]rune
}

func (c class) contains(r rune) bool {
	hit := false
	for _, ch := range c.chars {
		if ch == r {
			hit = true
			break
		}
	}
	if !hit {
		for _, rg := range c.ranges {
			if r >= rg[0] && r <= rg[1] {
				hit = true
				break
			}
		}
	}
	if c.negated {
		return !hit
	}
	return hit
}

// compile translates a pattern into a flat sequence of match instructions.
// Malformed constructs (unclosed class or brace group, trailing backslash)
// compile to literals; compile never fails.
func compile(pattern string) []op {
	var (
		program []op
		literal strings.Builder
	)
	flush := func() {
		if literal.Len() > 0 {
			program = append(program, op{kind: opLiteral, literal: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		switch pattern[i] {
		case '\\':
			if i+1 < len(pattern) {
				literal.WriteByte(pattern[i+1])
				i += 2
			} else {
				literal.WriteByte('\\')
				i++
			}
		case '*':
			flush()
			if strings.HasPrefix(pattern[i:], "**") {
				if strings.HasPrefix(pattern[i:], "**/") {
					program = append(program, op{kind: opDirs})
					i += 3
				} else {
					program = append(program, op{kind: opAnySpan})
					i += 2
				}
			} else {
				program = append(program, op{kind: opStar})
				i++
			}
		case '?':
			flush()
			program = append(program, op{kind: opOne})
			i++
		case '[':
			cl, next, ok := parseClass(pattern, i)
			if !ok {
				literal.WriteByte('[')
				i++
				break
			}
			flush()
			program = append(program, op{kind: opClass, class: cl})
			i = next
		case '{':
			group, next, ok := parseGroup(pattern, i)
			if !ok {
				literal.WriteByte('{')
				i++
				break
			}
			flush()
			program = append(program, group)
			i = next
		default:
			literal.WriteByte(pattern[i])
			i++
		}
	}
	flush()
	return program
}

type classItem struct {
	r       rune
	escaped bool
}

// parseClass parses "[seq]" starting at pattern[start] == '['. It returns
// the class and the index just past the closing ']'. A class with no
// closing bracket reports ok=false so the '[' falls back to a literal.
// A ']' in first position is a literal member; an escaped '-' never forms
// a range.
func parseClass(pattern string, start int) (class, int, bool) {
	i := start + 1
	var cl class
	if i < len(pattern) && pattern[i] == '!' {
		cl.negated = true
		i++
	}

	body := make([]classItem, 0, 8)
	closed := false
	for i < len(pattern) {
		if pattern[i] == ']' && len(body) > 0 {
			closed = true
			i++
			break
		}
		if pattern[i] == '\\' && i+1 < len(pattern) {
			r, size := utf8.DecodeRuneInString(pattern[i+1:])
			body = append(body, classItem{r: r, escaped: true})
			i += 1 + size
			continue
		}
		r, size := utf8.DecodeRuneInString(pattern[i:])
		body = append(body, classItem{r: r})
		i += size
	}
	if !closed {
		return class{}, 0, false
	}

	for j := 0; j < len(body); j++ {
		if j+2 < len(body) && body[j+1].r == '-' && !body[j+1].escaped {
			cl.ranges = append(cl.ranges, [2]rune{body[j].r, body[j+2].r})
			j += 2
			continue
		}
		cl.chars = append(cl.chars, body[j].r)
	}
	return cl, i, true
}

// parseGroup parses "{...}" starting at pattern[start] == '{'. Numeric
// bodies of the form n1..n2 become an integer-range instruction; comma
// bodies become an alternation whose alternatives are themselves compiled
// sub-patterns. A group that is unmatched, or that uses the digits-and-dots
// form without being a valid integer range, reports ok=false so the braces
// match literally.
func parseGroup(pattern string, start int) (op, int, bool) {
	depth := 0
	end := -1
scan:
	for i := start; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i
				break scan
			}
		}
	}
	if end < 0 {
		return op{}, 0, false
	}

	body := pattern[start+1 : end]
	if lo, hi, ok := parseIntRange(body); ok {
		return op{kind: opIntRange, lo: lo, hi: hi}, end + 1, true
	}
	if !strings.Contains(body, ",") && strings.Contains(body, "..") {
		// Attempted numeric range with non-integer endpoints.
		return op{}, 0, false
	}

	var alts [][]op
	for _, alt := range splitAlternatives(body) {
		alts = append(alts, compile(alt))
	}
	return op{kind: opAlt, alts: alts}, end + 1, true
}

func parseIntRange(body string) (int, int, bool) {
	dots := strings.Index(body, "..")
	if dots < 0 || strings.Contains(body, ",") {
		return 0, 0, false
	}
	lo, err := strconv.Atoi(body[:dots])
	if err != nil {
		return 0, 0, false
	}
	hi, err := strconv.Atoi(body[dots+2:])
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}

// splitAlternatives splits a brace body on top-level commas, leaving
// nested groups, classes, and escaped commas intact.
func splitAlternatives(body string) []string {
	var (
		alts  []string
		depth int
		from  int
	)
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\\':
			i++
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case ',':
			if depth == 0 {
				alts = append(alts, body[from:i])
				from = i + 1
			}
		}
	}
	return append(alts, body[from:])
}
