package converter

// Pick returns the row keyed by id, or nil when the batch did not load it.
func Pick[T any](rows map[uint]T, id uint) *T {
	v, ok := rows[id]
	if !ok {
		return nil
	}
	return &v
}

// PickOptional is Pick for nullable foreign keys.
func PickOptional[T any](rows map[uint]T, id *uint) *T {
	if id == nil {
		return nil
	}
	return Pick(rows, *id)
}

// Keys collects the foreign key of every row, skipping duplicates.
func Keys[T any](rows []T, key func(T) uint) []uint {
	seen := make(map[uint]struct{}, len(rows))
	out := make([]uint, 0, len(rows))
	for _, r := range rows {
		k := key(r)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// OptionalKeys is Keys for nullable foreign keys.
func OptionalKeys[T any](rows []T, key func(T) *uint) []uint {
	seen := make(map[uint]struct{}, len(rows))
	out := make([]uint, 0, len(rows))
	for _, r := range rows {
		k := key(r)
		if k == nil {
			continue
		}
		if _, dup := seen[*k]; dup {
			continue
		}
		seen[*k] = struct{}{}
		out = append(out, *k)
	}
	return out
}
