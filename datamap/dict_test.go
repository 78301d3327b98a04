package datamap_test

import (
	"reflect"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/jacentio/datadex/datamap"
)

func TestDictSetGetDelete(t *testing.T) {
	d := datamap.NewDict().
		Set("a", datamap.String("1")).
		Set("b", datamap.String("2")).
		Set("c", datamap.String("3"))

	if d.Len() != 3 {
		t.Errorf("expected 3 keys, got %d", d.Len())
	}
	v, ok := d.Get("b")
	if !ok || v != datamap.String("2") {
		t.Errorf("expected '2', got %v (%v)", v, ok)
	}
	if _, ok := d.Get("missing"); ok {
		t.Error("expected missing key to be absent")
	}

	if !d.Delete("b") {
		t.Error("expected delete of present key to report true")
	}
	if d.Delete("b") {
		t.Error("expected delete of absent key to report false")
	}
	if !reflect.DeepEqual(d.Keys(), []string{"a", "c"}) {
		t.Errorf("expected keys [a c], got %v", d.Keys())
	}
}

func TestDictOrder(t *testing.T) {
	d := datamap.NewDict().
		Set("z", datamap.Number(1)).
		Set("a", datamap.Number(2)).
		Set("m", datamap.Number(3))

	if !reflect.DeepEqual(d.Keys(), []string{"z", "a", "m"}) {
		t.Errorf("expected insertion order [z a m], got %v", d.Keys())
	}

	// Overwrites keep position; re-adding a deleted key appends.
	d.Set("a", datamap.Number(9))
	if !reflect.DeepEqual(d.Keys(), []string{"z", "a", "m"}) {
		t.Errorf("expected overwrite to keep order [z a m], got %v", d.Keys())
	}
	d.Delete("z")
	d.Set("z", datamap.Number(4))
	if !reflect.DeepEqual(d.Keys(), []string{"a", "m", "z"}) {
		t.Errorf("expected re-added key at the end, got %v", d.Keys())
	}
}

func TestDictKeysIsACopy(t *testing.T) {
	d := datamap.NewDict().Set("a", datamap.Null{}).Set("b", datamap.Null{})

	keys := d.Keys()
	keys[0] = "mutated"

	if !reflect.DeepEqual(d.Keys(), []string{"a", "b"}) {
		t.Errorf("expected keys [a b], got %v", d.Keys())
	}
}

func TestDictMarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		dict     *datamap.Dict
		expected string
	}{
		{
			name:     "empty",
			dict:     datamap.NewDict(),
			expected: `{}`,
		},
		{
			name: "insertion order kept",
			dict: datamap.NewDict().
				Set("z", datamap.Number(3)).
				Set("a", datamap.String("x")),
			expected: `{"z":3,"a":"x"}`,
		},
		{
			name: "every value member",
			dict: datamap.NewDict().
				Set("s", datamap.String("Fire")).
				Set("n", datamap.Number(2.5)).
				Set("i", datamap.Number(7)).
				Set("b", datamap.Bool(true)).
				Set("nul", datamap.Null{}).
				Set("l", datamap.List{datamap.String("a"), datamap.Number(1)}).
				Set("m", datamap.NewDict().Set("en", datamap.String("x"))),
			expected: `{"s":"Fire","n":2.5,"i":7,"b":true,"nul":null,"l":["a",1],"m":{"en":"x"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.dict)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(got) != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
