package glob

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// match runs the compiled program against the path with backtracking.
func match(program []op, s string) bool {
	if len(program) == 0 {
		return s == ""
	}

	head := program[0]
	rest := program[1:]

	switch head.kind {
	case opLiteral:
		if !strings.HasPrefix(s, head.literal) {
			return false
		}
		return match(rest, s[len(head.literal):])

	case opStar:
		for i := 0; ; {
			if match(rest, s[i:]) {
				return true
			}
			r, size := utf8.DecodeRuneInString(s[i:])
			if size == 0 || r == '/' {
				return false
			}
			i += size
		}

	case opAnySpan:
		for i := 0; ; {
			if match(rest, s[i:]) {
				return true
			}
			_, size := utf8.DecodeRuneInString(s[i:])
			if size == 0 {
				return false
			}
			i += size
		}

	case opDirs:
		// Zero segments first, then progressively deeper ones.
		if match(rest, s) {
			return true
		}
		for i := 0; i < len(s); i++ {
			if s[i] == '/' && match(rest, s[i+1:]) {
				return true
			}
		}
		return false

	case opOne:
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || r == '/' {
			return false
		}
		return match(rest, s[size:])

	case opClass:
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || r == '/' || !head.class.contains(r) {
			return false
		}
		return match(rest, s[size:])

	case opAlt:
		for _, alt := range head.alts {
			combined := make([]op, 0, len(alt)+len(rest))
			combined = append(combined, alt...)
			combined = append(combined, rest...)
			if match(combined, s) {
				return true
			}
		}
		return false

	case opIntRange:
		return matchIntRange(head, rest, s)
	}
	return false
}

// matchIntRange consumes a decimal integer (optionally signed) from the
// front of s and accepts when its value lies in [lo, hi]. Longer digit
// runs are tried first so "10" is preferred over "1" when both fit.
func matchIntRange(head op, rest []op, s string) bool {
	start := 0
	if strings.HasPrefix(s, "-") {
		start = 1
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return false
	}
	for k := end; k > start; k-- {
		n, err := strconv.Atoi(s[:k])
		if err != nil {
			continue
		}
		if n >= head.lo && n <= head.hi && match(rest, s[k:]) {
			return true
		}
	}
	return false
}
