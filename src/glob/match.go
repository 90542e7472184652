package glob

// Match reports whether subject matches pattern under q without compiling it. It is
// equivalent to Compile(pattern, q).Match(subject) but allocates nothing, at the cost
// of re-reading bracket classes whenever it backtracks.
func Match(subject, pattern string, q Quoting) bool {
	if q.IsQuoted() {
		return subject == pattern
	}
	q.mustCover(len(pattern))
	var si, pi, nextPI int
	nextSI := -1
	for si < len(subject) || pi < len(pattern) {
		if pi < len(pattern) {
			c := pattern[pi]
			raw := q.IsRaw(pi)
			switch {
			case raw && c == '?':
				if si < len(subject) {
					pi++
					si++
					continue
				}
			case raw && c == '*':
				nextPI = pi
				pi++
				nextSI = -1
				if si < len(subject) {
					nextSI = si + 1
				}
				continue
			case raw && c == '[':
				if si >= len(subject) {
					return false
				}
				if r := 1 + rangeMatch(pattern[pi+1:], q.Slice(pi+1), subject[si]); r > 0 {
					pi += r
					si++
					continue
				}
			default:
				if si < len(subject) && subject[si] == c {
					pi++
					si++
					continue
				}
			}
		}
		if nextSI < 0 {
			return false
		}
		si, pi = nextSI, nextPI
	}
	return true
}
