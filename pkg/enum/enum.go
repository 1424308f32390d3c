// Package enum registers the valid members of string-backed enum types so
// values arriving from requests can be resolved back to a declared member.
package enum

import (
	"fmt"
	"reflect"
)

var registry = map[reflect.Type]any{}

type members[T comparable] map[string]T

// New registers value as a member of its enum type and returns it, letting
// declarations read as `var Draft = enum.New(Status("draft"))`.
func New[T comparable](value T) T {
	v := reflect.ValueOf(value)
	t := v.Type()
	if _, ok := registry[t]; !ok {
		registry[t] = members[T]{}
	}

	registry[t].(members[T])[v.String()] = value
	return value
}

// ToEnum resolves s to the registered member of T. It fails when s was never
// declared through New.
func ToEnum[T comparable](s string) (T, error) {
	var zero T
	set, ok := registry[reflect.TypeOf(zero)]
	if !ok {
		return zero, fmt.Errorf("not found enum type %T", zero)
	}

	member, ok := set.(members[T])[s]
	if !ok {
		return zero, fmt.Errorf("not found value %s in enum %T", s, zero)
	}

	return member, nil
}
