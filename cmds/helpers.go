package cmds

import "strings"

// Var defines name taking one argument, and name+"." resetting it to zero.
func Var[T any](name string, desc ...string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}).Desc(strings.Join(desc, " ")))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines name setting true, and "!"+name setting false.
func Switch(name string, desc ...string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}).Desc(strings.Join(desc, " ")))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

// Collect defines name appending its argument on every occurrence.
func Collect[T any](name string, desc ...string) *[]T {
	var value []T
	// append
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(strings.Join(desc, " ")))
	return &value
}
