package stock

import (
	"testing"
)

func TestOrderedObject(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w orderedObject
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("field order", func(t *testing.T) {
		var w orderedObject
		w.Field("b", "hello").Field("a", 1)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"b":"hello","a":1}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w orderedObject
		w.Field("a", 0) // a zero value is added by Field.
		w.OmitEmpty("b", "")
		w.OmitEmpty("c", Specs{})
		w.OmitEmpty("d", Specs(nil))
		w.OmitEmpty("e", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":0,"e":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("marshal error", func(t *testing.T) {
		var w orderedObject
		w.Field("a", make(chan int))
		w.Field("b", 2)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("MarshalJSON() should fail on an unsupported value")
		}
	})
}
