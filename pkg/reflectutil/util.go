package reflectutil

import "reflect"

// PartialEqual reports whether every non-zero field of a equals the
// corresponding field of b. Zero fields of a are treated as "don't care",
// which lets tests compare responses without pinning generated ids or
// timestamps.
func PartialEqual[T any](a T, b T) bool {
	va := reflect.Indirect(reflect.ValueOf(a))
	vb := reflect.Indirect(reflect.ValueOf(b))

	for i := 0; i < va.NumField(); i++ {
		fieldA := va.Field(i)
		fieldB := vb.Field(i)

		if fieldA.IsZero() {
			continue
		}

		if !reflect.DeepEqual(fieldA.Interface(), fieldB.Interface()) {
			return false
		}
	}

	return true
}
