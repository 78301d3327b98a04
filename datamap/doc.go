// Package datamap provides an in-memory, insertion-ordered record store
// keyed by integer identifier, with name-based lookup in any language.
//
// Datadex indexes datasets whose canonical identity is numeric but whose
// practical access pattern is "find the record called X in language L". Every
// record carries a required name field mapping language codes to display
// strings, and the map maintains a reverse (language, name) -> id index so
// those lookups are O(1).
//
// # Key Features
//
//   - Insertion-ordered records, independent of identifier value
//   - O(1) reverse lookup by (language, name) pair
//   - Monotonic identifier generation that never collides with explicit ids
//   - Insertion-ordered record fields with stable reordering ([Record.SetAfter])
//   - Lazy per-language name views ([NameView])
//
// # Records
//
// Records are created only through the map's insertion API so the reverse
// index stays synchronized:
//
//	m := datamap.New()
//	rec, err := m.Insert(datamap.NewDict().
//	    Set("name", datamap.NewDict().
//	        Set("en", datamap.String("Fire")).
//	        Set("ja", datamap.String("火"))).
//	    Set("element", datamap.String("blast")))
//
// For the same reason the name field is special on the returned record:
// [Record.Set] validates its shape and reindexes through the owning map, and
// [Record.Get] hands back a copy. All other fields are opaque payload built
// from the closed [Value] union.
//
// # Name Collisions
//
// By default a (language, name) pair belongs to exactly one record and a
// colliding add fails with [ErrNameTaken]. Maps built with
// [Config.OverwriteNames] instead re-point the pair at the newer record; the
// policy is fixed per map.
//
// # Errors
//
// The package defines domain-specific errors:
//
//   - [ErrNotFound] - no record for the identifier
//   - [ErrAlreadyExists] - identifier already present
//   - [ErrNameTaken] - (language, name) pair claimed by another record
//   - [ErrMissingName] - inserted fields lack a name entry
//   - [ErrInvalidName] - name entry is not a language -> string mapping
//   - [ErrNameRequired] - attempt to delete the name field
//   - [ErrFieldNotFound] - record field absent
//   - [ErrLanguageNotFound] - record has no name in the language
//
// DataMap is a plain data structure: operations are synchronous, never block,
// and provide no concurrency control. Serialize shared use externally.
package datamap
