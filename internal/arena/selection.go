package arena

import "math/rand/v2"

// eligible filters arenas that can host a new match, preserving order.
func eligible(arenas []*Arena) []*Arena {
	out := make([]*Arena, 0, len(arenas))
	for _, a := range arenas {
		if a.Eligible() {
			out = append(out, a)
		}
	}
	return out
}

// pickUniform returns a uniformly random candidate, or nil if there are none.
func pickUniform(candidates []*Arena, rnd *rand.Rand) *Arena {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[rnd.IntN(len(candidates))]
}
