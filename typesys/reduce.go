// SPDX-License-Identifier: MIT

package typesys

// latticeOp selects meet or join reduction.
type latticeOp bool

const (
	meet latticeOp = false
	join latticeOp = true
)

func (op latticeOp) String() string {
	if op == join {
		return "sup"
	}

	return "inf"
}

// flatten absorbs nested meets (resp. joins) into one component list.
// Components of a canonical meet are never meets themselves, so one level suffices.
func (op latticeOp) flatten(ts []Type) []Type {
	out := make([]Type, 0, len(ts))
	for _, t := range ts {
		switch x := t.(type) {
		case *Infimum:
			if op == meet {
				out = append(out, x.components...)

				continue
			}
		case *Supremum:
			if op == join {
				out = append(out, x.components...)

				continue
			}
		}
		out = append(out, t)
	}

	return out
}

// reduce flattens ts and drops redundant components.
//
// Implementation:
//   - Stage 1: flatten nested meets (joins).
//   - Stage 2: compare every surviving pair; for a meet the larger of a
//     comparable pair goes, for a join the smaller. Pairs whose comparison
//     fails are left untouched.
//   - Stage 3: order the survivors lexicographically.
//
// Complexity:
//   - O(n²) comparisons over the flattened list.
func (s *System) reduce(op latticeOp, ts []Type) []Type {
	flat := op.flatten(ts)
	keep := make([]bool, len(flat))
	for i := range keep {
		keep[i] = true
	}
	for i := 0; i < len(flat); i++ {
		if !keep[i] {
			continue
		}
		for j := i + 1; j < len(flat); j++ {
			if !keep[j] {
				continue
			}
			o, err := Compare(flat[i], flat[j])
			if err != nil {
				continue
			}
			if (op == meet && o <= Same) || (op == join && o >= Same) {
				keep[j] = false

				continue
			}
			keep[i] = false

			break
		}
	}

	out := make([]Type, 0, len(flat))
	for i, t := range flat {
		if keep[i] {
			out = append(out, t)
		}
	}
	SortLexicographic(out)
	if len(out) < len(flat) {
		s.logger.Debug("typesys: redundant components absorbed",
			"op", op.String(), "flattened", len(flat), "kept", len(out))
	}

	return out
}
