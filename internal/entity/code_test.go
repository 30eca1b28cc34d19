package entity_test

import (
	"reflect"
	"testing"

	"github.com/tjjh89017/codestore-go/internal/entity"
)

func TestCodes_Keys(t *testing.T) {
	codes := entity.Codes{
		entity.NewCode("b", "2"),
		entity.NewCode("a", "1"),
	}

	got := codes.Keys()
	want := []string{"b", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	if len(entity.Codes{}.Keys()) != 0 {
		t.Error("Keys() on empty codes should be empty")
	}
}

func TestCodes_Find(t *testing.T) {
	codes := entity.Codes{entity.NewCode("a", "1")}

	code, ok := codes.Find("a")
	if !ok || code.Content != "1" {
		t.Errorf("Find(a) = %v, %v, want content 1", code, ok)
	}

	if _, ok := codes.Find("missing"); ok {
		t.Error("Find(missing) should report not found")
	}
}

func TestCodes_Sorted(t *testing.T) {
	codes := entity.Codes{
		entity.NewCode("c", "3"),
		entity.NewCode("a", "1"),
		entity.NewCode("b", "2"),
	}

	sorted := codes.Sorted()
	if !reflect.DeepEqual(sorted.Keys(), []string{"a", "b", "c"}) {
		t.Errorf("Sorted().Keys() = %v", sorted.Keys())
	}

	if codes[0].Key != "c" {
		t.Error("Sorted() should not modify the receiver")
	}
}
