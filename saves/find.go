package saves

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type Match struct {
	Name string
	// edit distance between the query and the name, lower is closer
	Distance int
}

// Find ranks the saves fuzzily matching query, closest first.
func (s *Store) Find(query string) ([]Match, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}
	var matches []Match
	for _, name := range names {
		distance := fuzzy.RankMatchNormalizedFold(query, name)
		if distance < 0 {
			continue
		}
		matches = append(matches, Match{
			Name:     name,
			Distance: distance,
		})
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return matches, nil
}

// Resolve returns the exact save named query, or else the closest fuzzy match.
func (s *Store) Resolve(query string) (string, error) {
	matches, err := s.Find(query)
	if err != nil {
		return "", err
	}
	for _, match := range matches {
		if match.Name == query {
			return query, nil
		}
	}
	if len(matches) == 0 {
		return "", &NotFoundError{Name: query}
	}
	return matches[0].Name, nil
}

const maxSuggestions = 3

// NotFoundError reports a missing save along with the closest existing names.
type NotFoundError struct {
	Name        string
	Suggestions []string
}

func (n *NotFoundError) Error() string {
	if len(n.Suggestions) == 0 {
		return fmt.Sprintf("%s: %s", ErrNotFound, n.Name)
	}
	return fmt.Sprintf("%s: %s, did you mean %s", ErrNotFound, n.Name, strings.Join(n.Suggestions, ", "))
}

func (n *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (s *Store) notFound(name string) error {
	ret := &NotFoundError{
		Name: name,
	}
	matches, err := s.Find(name)
	if err != nil {
		// suggestions are best effort
		return ret
	}
	for _, match := range matches[:min(len(matches), maxSuggestions)] {
		ret.Suggestions = append(ret.Suggestions, match.Name)
	}
	return ret
}
