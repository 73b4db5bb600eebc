package cmds

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.FprintUsage(os.Stdout)
}

func (p *Executor) FprintUsage(w io.Writer) {
	fprintCommands(w, p.commands, 0)
}

func fprintCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command pointer
	names := make(map[*Command][]string)
	var order []*Command
	for name, command := range commands {
		if command == nil {
			continue
		}
		if _, ok := names[command]; !ok {
			order = append(order, command)
		}
		names[command] = append(names[command], name)
	}
	for _, command := range order {
		slices.Sort(names[command])
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	indent := strings.Repeat("  ", depth)
	for _, command := range order {
		line := indent + strings.Join(names[command], ", ")
		if args := argsOf(command); args != "" {
			line += " " + args
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)
		if len(command.Subs) > 0 {
			fprintCommands(w, command.Subs, depth+1)
		}
	}
}

func argsOf(command *Command) string {
	if !command.Func.IsValid() {
		return ""
	}
	var args []string
	t := command.Func.Type()
	for i := range t.NumIn() {
		in := t.In(i)
		if in.Kind() == reflect.Pointer {
			args = append(args, "["+in.Elem().Kind().String()+"]")
		} else {
			args = append(args, "<"+in.Kind().String()+">")
		}
	}
	return strings.Join(args, " ")
}
