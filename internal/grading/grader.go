package grading

// ChoicesCorrect reports whether the selected choices exactly match the answer
// key. Order is ignored; a missing or extra choice makes the answer wrong.
func ChoicesCorrect(selected, correct []uint) bool {
	if len(correct) == 0 {
		return false
	}
	return setEqual(toSet(selected), toSet(correct))
}

func toSet(ids []uint) map[uint]struct{} {
	m := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}

func setEqual(a, b map[uint]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
