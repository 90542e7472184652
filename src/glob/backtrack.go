package glob

// Match reports whether the whole subject matches the compiled pattern.
//
// The scan keeps a single backtrack frame: the most recent star and the subject
// offset it was entered at. On a mismatch the star absorbs one more byte and matching
// resumes right after it. Earlier stars never need revisiting since the latest star
// can absorb anything they could.
func (p *Pattern) Match(subject string) bool {
	var si, ti, backSI int
	backTI := -1
	for si < len(subject) {
		if ti < len(p.tokens) {
			tk := p.tokens[ti]
			if isStar(tk) {
				backTI, backSI = ti, si
				ti++
				continue
			} else if matches(tk, subject[si]) {
				ti++
				si++
				continue
			}
		}
		if backTI < 0 {
			return false
		}
		backSI++
		ti, si = backTI+1, backSI
	}
	for ti < len(p.tokens) && isStar(p.tokens[ti]) {
		ti++
	}
	return ti == len(p.tokens)
}
