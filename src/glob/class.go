package glob

// rangeFail is returned by rangeMatch when the character is not in the class.
const rangeFail = -1

// rangeMatch matches c against the bracket class whose interior starts at p[0], the
// byte right after '['. q is aligned with p. It returns the offset just past the
// closing ']' on success or rangeFail.
//
// A raw '~' first negates the class. A raw ']' first (after any '~') is a member
// instead of the terminator. A raw '-' between two members makes an inclusive range
// unless the class ends right after it. A class with no terminator only matches a
// literal '[' and consumes nothing of the interior.
func rangeMatch(p string, q Quoting, c byte) int {
	var i int
	neg, matched := false, false
	if i < len(p) && p[i] == '~' && q.IsRaw(i) {
		neg = true
		i++
	}
	if i < len(p) && p[i] == ']' && q.IsRaw(i) {
		matched = c == ']'
		i++
	}
	for ; ; i++ {
		if i >= len(p) {
			if c == '[' {
				return 0
			}
			return rangeFail
		}
		if p[i] == ']' && q.IsRaw(i) {
			break
		}
		if isRange(p, q, i) {
			if p[i] <= c && c <= p[i+2] {
				matched = true
			}
			i += 2
		} else if p[i] == c {
			matched = true
		}
	}
	if matched != neg {
		return i + 1
	}
	return rangeFail
}

// classSpan returns the length of the well formed class starting with the '[' at
// p[0], brackets included, or 1 when the class is malformed and '[' is literal. It
// scans exactly like rangeMatch without evaluating membership.
func classSpan(p string, q Quoting) int {
	i := 1
	if i < len(p) && p[i] == '~' && q.IsRaw(i) {
		i++
	}
	if i < len(p) && p[i] == ']' && q.IsRaw(i) {
		i++
	}
	for ; ; i++ {
		if i >= len(p) {
			return 1
		}
		if p[i] == ']' && q.IsRaw(i) {
			return i + 1
		}
		if isRange(p, q, i) {
			i += 2
		}
	}
}

// isRange reports whether p[i] starts a lo-hi range.
func isRange(p string, q Quoting, i int) bool {
	return i+2 < len(p) &&
		p[i+1] == '-' && q.IsRaw(i+1) &&
		!(p[i+2] == ']' && q.IsRaw(i+2))
}

// classMatch evaluates a compiled class interior against c. The interior is already
// known to be well formed so the scan runs to the end of text.
func classMatch(text string, q Quoting, c byte) bool {
	var i int
	neg, matched := false, false
	if i < len(text) && text[i] == '~' && q.IsRaw(i) {
		neg = true
		i++
	}
	if i < len(text) && text[i] == ']' && q.IsRaw(i) {
		matched = c == ']'
		i++
	}
	for i < len(text) {
		if isRange(text, q, i) {
			if text[i] <= c && c <= text[i+2] {
				matched = true
			}
			i += 3
			continue
		}
		if text[i] == c {
			matched = true
		}
		i++
	}
	return matched != neg
}
