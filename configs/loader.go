package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader looks up values from a list of cue files, earlier files taking precedence.
// Files are read and validated against the schema on first lookup.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

type source struct {
	name    string
	content []byte
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return newLoader(schemaSrc, func() (ret []source, err error) {
		for _, filePath := range filePaths {
			content, err := os.ReadFile(filePath)
			if err != nil {
				return nil, err
			}
			ret = append(ret, source{
				name:    filePath,
				content: content,
			})
		}
		return
	})
}

// NewLoaderFromStrings builds a loader over in-memory cue sources named by their index.
func NewLoaderFromStrings(schemaSrc string, contents ...string) Loader {
	return newLoader(schemaSrc, func() (ret []source, err error) {
		for i, content := range contents {
			ret = append(ret, source{
				name:    fmt.Sprintf("config%d.cue", i),
				content: []byte(content),
			})
		}
		return
	})
}

func newLoader(schemaSrc string, getSources func() ([]source, error)) Loader {
	return Loader{

		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, err
				}
			}

			sources, err := getSources()
			if err != nil {
				return nil, err
			}

			for _, src := range sources {
				value := ctx.CompileBytes(
					src.content,
					cue.Filename(src.name),
				)
				if err = value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  src.name,
				})
			}

			return
		}),
	}
}

type rootInfo struct {
	value cue.Value
	path  string
}

// Err reports the first read, compile or validation error.
func (l Loader) Err() error {
	_, err := l.getRoots()
	return err
}

func (l Loader) Paths() ([]string, error) {
	roots, err := l.getRoots()
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(roots))
	for _, info := range roots {
		ret = append(ret, info.path)
	}
	return ret, nil
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if value.Exists() && value.Err() == nil {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}
