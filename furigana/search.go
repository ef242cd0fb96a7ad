package furigana

import (
	"furiganaalign/kana"
	"furiganaalign/lookup"
	"furiganaalign/model"
)

// piece is one step of a search path: the characters [start, end) either
// read as themselves (reading == "") or annotated with reading.
type piece struct {
	start, end int
	reading    string
}

// node links a piece to the path that led to it, so sibling branches share
// their common prefix.
type node struct {
	piece  piece
	parent *node
}

func (n *node) pieces() []piece {
	var out []piece
	for ; n != nil; n = n.parent {
		out = append(out, n.piece)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

type state struct {
	kanjiPos   int
	readingPos int
}

type frame struct {
	state
	path     *node
	expanded bool
	found    int
}

type searchResult struct {
	paths    [][]piece
	steps    int
	exceeded bool
}

// search enumerates every complete path through e. It is an iterative
// depth-first walk; a state whose subtree yielded no path is remembered and
// never expanded again. maxSteps bounds the number of expanded states; zero
// means no bound.
func search(e model.Entry, c *lookup.Cache, maxSteps int) searchResult {
	var res searchResult
	eff, target := e.Effective, e.ReadingRunes()
	maxWin := c.MaxWindow()
	dead := make(map[state]struct{})
	stack := []frame{{}}
	var children []frame
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			if len(res.paths) == f.found {
				dead[f.state] = struct{}{}
			}
			continue
		}
		if f.kanjiPos == len(eff) && f.readingPos == len(target) {
			res.paths = append(res.paths, f.path.pieces())
			continue
		}
		if _, ok := dead[f.state]; ok {
			continue
		}
		if maxSteps > 0 && res.steps >= maxSteps {
			res.exceeded = true
			break
		}
		res.steps++

		f.expanded = true
		f.found = len(res.paths)
		stack = append(stack, f)

		children = children[:0]
		if f.kanjiPos < len(eff) && f.readingPos < len(target) {
			r := eff[f.kanjiPos]
			if kana.IsKana(r) && kana.ToHiraganaRune(r) == target[f.readingPos] {
				children = append(children, f.next(1, 1, ""))
			}
		}
		for l := 1; l <= maxWin && f.kanjiPos+l <= len(eff); l++ {
			// a lone kana only reads as itself, which the literal step covers
			if l == 1 && kana.IsKana(eff[f.kanjiPos]) {
				continue
			}
			for _, cand := range c.CandidatesFor(e, lookup.Window{Start: f.kanjiPos, Length: l}) {
				n, ok := prefixLen(target[f.readingPos:], cand)
				if !ok {
					continue
				}
				children = append(children, f.next(l, n, cand))
			}
		}
		// push in reverse so the first transition is explored first
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return res
}

func (f frame) next(chars, readingChars int, reading string) frame {
	p := piece{start: f.kanjiPos, end: f.kanjiPos + chars, reading: reading}
	return frame{
		state: state{kanjiPos: f.kanjiPos + chars, readingPos: f.readingPos + readingChars},
		path:  &node{piece: p, parent: f.path},
	}
}

// prefixLen reports whether cand is a non-empty prefix of target and how
// many runes it spans.
func prefixLen(target []rune, cand string) (int, bool) {
	n := 0
	for _, r := range cand {
		if n >= len(target) || target[n] != r {
			return 0, false
		}
		n++
	}
	return n, n > 0
}
