package domain

// DiffTags splits the symmetric difference of saved and current into the
// tags to add (current - saved, in current order) and the tags to delete
// (saved - current, in saved order).
func DiffTags(saved, current []string) (add, del []string) {
	return difference(current, saved), difference(saved, current)
}

func difference(a, b []string) []string {
	drop := make(map[string]struct{}, len(b))
	for _, s := range b {
		drop[s] = struct{}{}
	}
	var out []string
	for _, s := range a {
		if _, ok := drop[s]; ok {
			continue
		}
		drop[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
