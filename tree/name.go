package tree

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Hosts commonly truncate identifiers; 63 runes matches the limit the
// standard engines enforce.
const maxNameLen = 63

// namePrefix marks graph names derived from Go functions.
const namePrefix = "[unit] "

// UniqueName derives the registered graph name for a function: the
// prefix plus the function's import-path-qualified identity, truncated
// from the front when too long. The tail is kept because it carries
// the function name; the prefix always survives so derived names stay
// recognizable. Deterministic, so the same function always resolves to
// the same name.
func UniqueName(fn any) (string, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return "", fmt.Errorf("tree: cannot derive a unit name from %T", fn)
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "", fmt.Errorf("tree: function identity unavailable for %T", fn)
	}
	return TruncateName(namePrefix, f.Name()), nil
}

// TruncateName joins prefix and name, keeping the whole prefix and the
// tail of name when the result would exceed the host limit.
func TruncateName(prefix, name string) string {
	if len([]rune(prefix))+len([]rune(name)) <= maxNameLen {
		return prefix + name
	}
	keep := maxNameLen - len([]rune(prefix))
	if keep <= 0 {
		return string([]rune(prefix)[:maxNameLen])
	}
	runes := []rune(name)
	return prefix + string(runes[len(runes)-keep:])
}

// shortName trims the import path off a qualified function name, for
// log lines.
func shortName(qualified string) string {
	if i := strings.LastIndex(qualified, "/"); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
