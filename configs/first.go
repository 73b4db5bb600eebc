package configs

import (
	"errors"
)

// First decodes the first value at path, or returns the zero value if no file defines it.
// Malformed values panic; the loader already validated them against the schema.
func First[T any](loader Loader, path string) (ret T) {
	if err := loader.AssignFirst(path, &ret); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			var zero T
			return zero
		}
		panic(err)
	}
	return
}
