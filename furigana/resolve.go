package furigana

import "furiganaalign/model"

// distinct drops structural duplicates, keeping first occurrences in order.
func distinct(solutions []model.IndexedSolution) []model.IndexedSolution {
	var out []model.IndexedSolution
	for _, s := range solutions {
		dup := false
		for _, o := range out {
			if o.Equal(s) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, s)
		}
	}
	return out
}

// resolve applies the acceptance policy: one distinct solution is accepted,
// none is unsolved, several are ambiguous.
func resolve(solutions []model.IndexedSolution) (model.IndexedSolution, []model.IndexedSolution, Status) {
	d := distinct(solutions)
	switch len(d) {
	case 0:
		return model.IndexedSolution{}, nil, Unsolved
	case 1:
		return d[0], d, Solved
	}
	return model.IndexedSolution{}, d, Ambiguous
}
