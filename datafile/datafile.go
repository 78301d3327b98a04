// Package datafile loads and saves datadex datasets.
//
// A dataset file is a JSON array of record objects. An object's optional
// "id" member (a non-negative integer) fixes the record identifier; records
// without one receive generated identifiers. The required "name" member maps
// language codes to display strings. Every other member is opaque payload,
// and member order in the file becomes field order on the record, so a
// loaded dataset saves back byte-stable.
package datafile

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	json "github.com/goccy/go-json"

	"github.com/jacentio/datadex/datamap"
	"github.com/jacentio/datadex/internal/langtag"
)

// Options configures dataset loading.
type Options struct {
	// Lenient loads the dataset with the map's OverwriteNames policy, so a
	// (language, name) pair appearing twice re-points at the later record
	// instead of failing.
	Lenient bool

	// ValidateLanguages rejects records whose name field uses a language
	// code that is not a well-formed BCP 47 tag. Codes are checked, never
	// rewritten.
	ValidateLanguages bool

	// FirstID overrides the first auto-generated identifier.
	// Default: 1
	FirstID int64

	// Logger receives a per-load summary. Defaults to slog.Default().
	Logger *slog.Logger
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Load reads a dataset file into a new DataMap.
func Load(path string, opts Options) (*datamap.DataMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	m, err := Decode(f, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	opts.logger().Info("dataset loaded",
		"path", path,
		"records", m.Len(),
	)
	return m, nil
}

// Decode reads a dataset from r into a new DataMap. Records are added in file
// order: objects with an "id" member through AddWithID, the rest through
// Insert.
func Decode(r io.Reader, opts Options) (*datamap.DataMap, error) {
	m := datamap.NewWithConfig(datamap.Config{
		FirstID:        opts.FirstID,
		OverwriteNames: opts.Lenient,
	})

	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("dataset must be a JSON array, got %v", tok)
	}

	for i := 0; dec.More(); i++ {
		fields, err := decodeRecord(dec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		id, hasID, err := popID(fields)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if opts.ValidateLanguages {
			if err := checkLanguages(fields); err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
		}
		if hasID {
			_, err = m.AddWithID(id, fields)
		} else {
			_, err = m.Insert(fields)
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	return m, nil
}

// Save writes a DataMap to a dataset file.
func Save(path string, m *datamap.DataMap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}
	if err := Encode(f, m); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Encode writes the records in store order, each with its "id" member first
// and the remaining fields in record order.
func Encode(w io.Writer, m *datamap.DataMap) error {
	out := make([]*datamap.Dict, 0, m.Len())
	for _, rec := range m.Records() {
		d := datamap.NewDict().Set("id", datamap.Number(float64(rec.ID())))
		for _, field := range rec.Fields() {
			v, err := rec.Get(field)
			if err != nil {
				return err
			}
			d.Set(field, v)
		}
		out = append(out, d)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	return nil
}

// decodeRecord decodes one dataset object into an ordered Dict. Token-level
// decoding keeps the file's member order.
func decodeRecord(dec *json.Decoder) (*datamap.Dict, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("record must be a JSON object, got %v", tok)
	}
	return decodeDict(dec)
}

// decodeDict decodes object members after the opening brace.
func decodeDict(dec *json.Decoder) (*datamap.Dict, error) {
	d := datamap.NewDict()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", keyTok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		d.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeList(dec *json.Decoder) (datamap.List, error) {
	l := datamap.List{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		l = append(l, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return l, nil
}

func decodeValue(dec *json.Decoder) (datamap.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeDict(dec)
		case '[':
			return decodeList(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return datamap.String(t), nil
	case float64:
		return datamap.Number(t), nil
	case bool:
		return datamap.Bool(t), nil
	case nil:
		return datamap.Null{}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// popID removes the "id" member from decoded fields and returns it as an
// identifier.
func popID(fields *datamap.Dict) (int64, bool, error) {
	v, ok := fields.Get("id")
	if !ok {
		return 0, false, nil
	}
	n, ok := v.(datamap.Number)
	if !ok {
		return 0, false, fmt.Errorf("id must be a number, got %T", v)
	}
	f := float64(n)
	if f != math.Trunc(f) || f < 0 {
		return 0, false, fmt.Errorf("id must be a non-negative integer, got %v", f)
	}
	fields.Delete("id")
	return int64(f), true, nil
}

// checkLanguages verifies every language code in the record's name mapping.
func checkLanguages(fields *datamap.Dict) error {
	nv, ok := fields.Get(datamap.FieldName)
	if !ok {
		return nil // the insertion path reports the missing name
	}
	names, ok := nv.(*datamap.Dict)
	if !ok {
		return nil // the insertion path reports the invalid shape
	}
	for _, code := range names.Keys() {
		if !langtag.Valid(code) {
			return fmt.Errorf("invalid language code %q", code)
		}
	}
	return nil
}
