package datamap

// nameKey is the reverse index key: one entry per (language, name) pair
// present in the map's records.
type nameKey struct {
	lang string
	name string
}

// Entry pairs an explicit identifier with raw record fields for bulk
// construction.
type Entry struct {
	ID     int64
	Fields *Dict
}

// DataMap owns an insertion-ordered collection of records keyed by
// identifier, a derived reverse index from (language, name) to identifier,
// and the identifier generator. Records enter the map only through AddWithID,
// Insert and Extend so the index and generator stay consistent; the three are
// updated as a single unit and a failed call leaves the map unchanged, except
// that a failed Insert still consumes its candidate identifier.
//
// DataMap is not safe for concurrent use; callers must serialize access.
type DataMap struct {
	config  Config
	order   []int64
	entries map[int64]*Record
	reverse map[nameKey]int64

	// Generator state. nextID is always strictly greater than lastID, the
	// highest identifier assigned so far, explicit or generated.
	nextID int64
	lastID int64
}

// New creates an empty DataMap with DefaultConfig.
func New() *DataMap {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an empty DataMap with the given configuration.
func NewWithConfig(config Config) *DataMap {
	config.validate()
	return &DataMap{
		config:  config,
		entries: make(map[int64]*Record),
		reverse: make(map[nameKey]int64),
		nextID:  config.FirstID,
		lastID:  config.FirstID - 1,
	}
}

// FromEntries creates a DataMap pre-populated through the AddWithID path, in
// input order.
func FromEntries(entries []Entry) (*DataMap, error) {
	m := New()
	for _, e := range entries {
		if _, err := m.AddWithID(e.ID, e.Fields); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// AddWithID adds a record under an explicit identifier and returns it.
//
// It fails with ErrAlreadyExists if the identifier is present, ErrMissingName
// or ErrInvalidName if the fields lack a valid name mapping, and ErrNameTaken
// if a (language, name) pair is claimed by another record (unless the map was
// configured with OverwriteNames). An identifier greater than any assigned so
// far permanently advances the auto generator past it.
func (m *DataMap) AddWithID(id int64, fields *Dict) (*Record, error) {
	if _, exists := m.entries[id]; exists {
		return nil, ErrAlreadyExists
	}
	rec, err := m.add(id, fields)
	if err != nil {
		return nil, err
	}
	if id > m.lastID {
		m.lastID = id
		m.nextID = id + 1
	}
	return rec, nil
}

// Insert adds a record under the next generated identifier and returns it.
// The candidate identifier is consumed even if the insertion fails.
func (m *DataMap) Insert(fields *Dict) (*Record, error) {
	id := m.nextID
	m.nextID++
	rec, err := m.add(id, fields)
	if err != nil {
		return nil, err
	}
	m.lastID = id
	return rec, nil
}

// Extend inserts each raw field dict in order. It is not atomic: a failure
// partway leaves the records inserted so far committed.
func (m *DataMap) Extend(fields []*Dict) error {
	for _, f := range fields {
		if _, err := m.Insert(f); err != nil {
			return err
		}
	}
	return nil
}

// add validates, indexes and appends a record. Validation happens before any
// state is touched so a failing add leaves entries, reverse index and order
// unchanged.
func (m *DataMap) add(id int64, fields *Dict) (*Record, error) {
	if fields == nil {
		return nil, ErrMissingName
	}
	nv, ok := fields.Get(FieldName)
	if !ok {
		return nil, ErrMissingName
	}
	names, err := nameTranslations(nv)
	if err != nil {
		return nil, err
	}
	if !m.config.OverwriteNames {
		for _, t := range names {
			if owner, claimed := m.reverse[nameKey{t.Lang, t.Name}]; claimed && owner != id {
				return nil, ErrNameTaken
			}
		}
	}

	rec := &Record{id: id, fields: fields.clone(), owner: m}
	for _, t := range names {
		m.reverse[nameKey{t.Lang, t.Name}] = id
	}
	m.entries[id] = rec
	m.order = append(m.order, id)
	return rec, nil
}

// Get returns the record for an identifier, or ErrNotFound.
func (m *DataMap) Get(id int64) (*Record, error) {
	rec, ok := m.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

// IDOf returns the identifier of the record named name in the given language.
func (m *DataMap) IDOf(lang, name string) (int64, bool) {
	id, ok := m.reverse[nameKey{lang, name}]
	return id, ok
}

// EntryOf returns the record named name in the given language, which can then
// be used to read the other languages.
func (m *DataMap) EntryOf(lang, name string) (*Record, bool) {
	id, ok := m.reverse[nameKey{lang, name}]
	if !ok {
		return nil, false
	}
	rec, ok := m.entries[id]
	return rec, ok
}

// Names returns a lazy view of all record names in one language.
func (m *DataMap) Names(lang string) NameView {
	return NameView{m: m, lang: lang}
}

// Len returns the number of records.
func (m *DataMap) Len() int {
	return len(m.order)
}

// IDs returns the identifiers in insertion order, regardless of numeric
// value.
func (m *DataMap) IDs() []int64 {
	out := make([]int64, len(m.order))
	copy(out, m.order)
	return out
}

// Records returns the records in insertion order.
func (m *DataMap) Records() []*Record {
	out := make([]*Record, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.entries[id])
	}
	return out
}

// Delete removes a record and its reverse index entries, or fails with
// ErrNotFound. The removed record is detached: further name mutations on it
// no longer touch this map.
func (m *DataMap) Delete(id int64) error {
	rec, ok := m.entries[id]
	if !ok {
		return ErrNotFound
	}
	for _, t := range rec.Names() {
		key := nameKey{t.Lang, t.Name}
		if owner, claimed := m.reverse[key]; claimed && owner == id {
			delete(m.reverse, key)
		}
	}
	delete(m.entries, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	rec.owner = nil
	return nil
}

// reindex replaces a record's (language, name) index entries with the given
// translations, or fails with ErrNameTaken without changing anything. Called
// by Record.Set before the record's name field is overwritten.
func (m *DataMap) reindex(r *Record, names []Translation) error {
	if !m.config.OverwriteNames {
		for _, t := range names {
			if owner, claimed := m.reverse[nameKey{t.Lang, t.Name}]; claimed && owner != r.id {
				return ErrNameTaken
			}
		}
	}
	for _, t := range r.Names() {
		key := nameKey{t.Lang, t.Name}
		if owner, claimed := m.reverse[key]; claimed && owner == r.id {
			delete(m.reverse, key)
		}
	}
	for _, t := range names {
		m.reverse[nameKey{t.Lang, t.Name}] = r.id
	}
	return nil
}
