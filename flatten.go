package pathtoregexp

import "iter"

// Flatten expands optional groups into every linear token sequence the
// path can take. The sequence without a group comes before the sequences
// with it, so shorter alternatives are tried first. Yielded slices contain
// no Group and must not be modified.
//
// For "/posts{/:year{/:month}}" it yields:
//
//	[Text("/posts")]
//	[Text("/posts"), Text("/"), Parameter(year)]
//	[Text("/posts"), Text("/"), Parameter(year), Text("/"), Parameter(month)]
func Flatten(tokens []Token) iter.Seq[[]Token] {
	return func(yield func([]Token) bool) {
		flatten(tokens, 0, nil, yield)
	}
}

// flatten reports whether the consumer wants more sequences.
func flatten(tokens []Token, index int, init []Token, yield func([]Token) bool) bool {
	if index == len(tokens) {
		return yield(init)
	}

	if group, ok := tokens[index].(Group); ok {
		if !flatten(tokens, index+1, init, yield) {
			return false
		}

		return flatten(group.Tokens, 0, init, func(seq []Token) bool {
			return flatten(tokens, index+1, seq, yield)
		})
	}

	seq := make([]Token, len(init), len(init)+1)
	copy(seq, init)
	seq = append(seq, tokens[index])

	return flatten(tokens, index+1, seq, yield)
}
