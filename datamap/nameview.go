package datamap

// NameView is a lazy, read-only projection of all record names in one
// language. It stores no data: every call reads the current state of the
// underlying DataMap.
type NameView struct {
	m    *DataMap
	lang string
}

// Lang returns the language code the view is bound to.
func (v NameView) Lang() string {
	return v.lang
}

// Contains reports whether some record in the map carries the name in the
// view's language.
func (v NameView) Contains(name string) bool {
	_, ok := v.m.EntryOf(v.lang, name)
	return ok
}

// Each calls fn with each record's name in map insertion order, stopping
// early when fn returns false. It fails with ErrLanguageNotFound as soon as
// it reaches a record that has no name in the view's language; names yielded
// before that point have already been observed by fn.
func (v NameView) Each(fn func(name string) bool) error {
	for _, id := range v.m.order {
		name, err := v.m.entries[id].Name(v.lang)
		if err != nil {
			return err
		}
		if !fn(name) {
			return nil
		}
	}
	return nil
}

// Slice materializes the view into a slice, in map insertion order.
func (v NameView) Slice() ([]string, error) {
	out := make([]string, 0, v.m.Len())
	err := v.Each(func(name string) bool {
		out = append(out, name)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
