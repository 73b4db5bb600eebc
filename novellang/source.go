package novellang

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// JoinLines joins editor lines the way the host hands them over.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

type Pos struct {
	Source *Source
	Line   int
	Column int
}
