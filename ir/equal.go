package ir

import "reflect"

// Equal reports whether two Database values are structurally identical.
// All IR entities are plain trees of values and pointers-to-values with no
// sharing between siblings (spec.md §9 "never share subtrees between two
// parents; clone on attach"), so reflect.DeepEqual is a safe and exact
// structural comparison -- the same approach the teacher uses for its own
// struct-heavy PE model in its table-driven tests (e.g. section_test.go).
func Equal(a, b *Database) bool {
	return reflect.DeepEqual(a, b)
}
