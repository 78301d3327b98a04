package datamap

// FieldName is the required field present on every record: a mapping from
// language code to display name.
const FieldName = "name"

// Translation is one (language code, display name) pair from a record's name
// field.
type Translation struct {
	Lang string
	Name string
}

// Record is a single identified entry: an immutable identifier plus an
// insertion-ordered collection of fields. Records are created exclusively by
// a DataMap so the map can keep its reverse name index synchronized; for the
// same reason, mutations of the name field are validated and reindexed
// through the owning map, and Get returns a defensive copy of the name field.
// All other fields are opaque payload accessed by reference.
type Record struct {
	id     int64
	fields *Dict
	owner  *DataMap
}

// ID returns the identifier assigned to this record at creation.
func (r *Record) ID() int64 {
	return r.id
}

// Get returns the value of a field, or ErrFieldNotFound if absent.
// The name field is returned as a copy; change it through Set.
func (r *Record) Get(field string) (Value, error) {
	v, ok := r.fields.Get(field)
	if !ok {
		return nil, ErrFieldNotFound
	}
	if field == FieldName {
		return cloneValue(v), nil
	}
	return v, nil
}

// Set inserts or overwrites a field. A brand-new field is appended at the end
// of the field order; an existing field keeps its position. Setting the name
// field validates its shape and updates the owning map's reverse index, and
// fails with ErrInvalidName or ErrNameTaken without modifying the record.
func (r *Record) Set(field string, value Value) error {
	if field == FieldName {
		return r.setName(value)
	}
	r.fields.Set(field, value)
	return nil
}

// SetAfter sets a field like Set, then repositions it immediately after the
// anchor field. The fields that previously followed the anchor keep their
// relative order behind it. If the anchor is absent, SetAfter behaves exactly
// like Set and performs no reordering.
func (r *Record) SetAfter(field string, value Value, anchor string) error {
	_, hasAnchor := r.fields.Get(anchor)
	if err := r.Set(field, value); err != nil {
		return err
	}
	if hasAnchor {
		r.fields.moveAfter(field, anchor)
	}
	return nil
}

// Delete removes a field, or fails with ErrFieldNotFound if absent. The name
// field cannot be removed; attempting to fails with ErrNameRequired.
func (r *Record) Delete(field string) error {
	if field == FieldName {
		return ErrNameRequired
	}
	if !r.fields.Delete(field) {
		return ErrFieldNotFound
	}
	return nil
}

// Fields returns the field names in insertion order.
func (r *Record) Fields() []string {
	return r.fields.Keys()
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return r.fields.Len()
}

// Name returns the record's display name in the given language, or
// ErrLanguageNotFound if the record has no name in that language.
func (r *Record) Name(lang string) (string, error) {
	v, ok := r.nameDict().Get(lang)
	if !ok {
		return "", ErrLanguageNotFound
	}
	return string(v.(String)), nil
}

// Names returns every translation of the record's name, in the order stored
// in the name field.
func (r *Record) Names() []Translation {
	names := r.nameDict()
	out := make([]Translation, 0, names.Len())
	for _, lang := range names.keys {
		v, _ := names.Get(lang)
		out = append(out, Translation{Lang: lang, Name: string(v.(String))})
	}
	return out
}

// nameDict returns the stored name mapping. The insertion and mutation paths
// guarantee it is present and well-formed.
func (r *Record) nameDict() *Dict {
	v, _ := r.fields.Get(FieldName)
	return v.(*Dict)
}

func (r *Record) setName(value Value) error {
	names, err := nameTranslations(value)
	if err != nil {
		return err
	}
	if r.owner != nil {
		if err := r.owner.reindex(r, names); err != nil {
			return err
		}
	}
	r.fields.Set(FieldName, cloneValue(value))
	return nil
}

// nameTranslations validates that a value is a mapping from language code to
// string and returns its pairs in stored order.
func nameTranslations(value Value) ([]Translation, error) {
	d, ok := value.(*Dict)
	if !ok || d == nil {
		return nil, ErrInvalidName
	}
	out := make([]Translation, 0, d.Len())
	for _, lang := range d.keys {
		v, _ := d.Get(lang)
		s, ok := v.(String)
		if !ok {
			return nil, ErrInvalidName
		}
		out = append(out, Translation{Lang: lang, Name: string(s)})
	}
	return out, nil
}
