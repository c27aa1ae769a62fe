package domain

import (
	"slices"
	"strconv"
	"strings"
)

// Command is a fully prepared child process invocation.
type Command struct {
	Path      string
	Args      []string
	Overrides map[string]string
}

// String renders the command for diagnostics: sorted overrides first, then the quoted program and arguments.
func (c *Command) String() string {
	var b strings.Builder

	keys := make([]string, 0, len(c.Overrides))
	for k := range c.Overrides {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(strconv.Quote(c.Overrides[k]))
		b.WriteByte(' ')
	}

	b.WriteString(strconv.Quote(c.Path))
	for _, arg := range c.Args {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(arg))
	}

	return b.String()
}
