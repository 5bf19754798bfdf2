package domain

import (
	"fmt"
	"regexp"
)

// commandPattern matches <verb>:<object>[:<context>] <params>.
// It is a search, not a full-string match: leading text before the first
// verb:object pair is ignored.
var commandPattern = regexp.MustCompile(`(\w+):(\w+):?(\w+)? *(.*)`)

// ParsedCommand is the result of parsing a raw command string.
type ParsedCommand struct {
	Verb    string
	Object  string
	Context string
	Params  string
	matched bool
}

// ParseCommand scans raw for a command. It never fails; use Valid to check
// whether the parse can be trusted.
func ParseCommand(raw string) ParsedCommand {
	m := commandPattern.FindStringSubmatch(raw)
	if m == nil {
		return ParsedCommand{}
	}
	return ParsedCommand{
		Verb:    m[1],
		Object:  m[2],
		Context: m[3],
		Params:  m[4],
		matched: true,
	}
}

// Matched reports whether the grammar found a verb:object pair at all.
func (c ParsedCommand) Matched() bool {
	return c.matched
}

// Valid reports whether verb, object and params are all present.
func (c ParsedCommand) Valid() bool {
	return c.matched && c.Verb != "" && c.Object != "" && c.Params != ""
}

// HasContext reports whether the command names a context.
func (c ParsedCommand) HasContext() bool {
	return c.Context != ""
}

// Key returns the registry key "<verb>:<object>".
func (c ParsedCommand) Key() string {
	return ActionKey(c.Verb, c.Object)
}

// Attributes returns the command with its required attributes checked.
// It fails with ErrActionAttrsMissing on an invalid parse.
func (c ParsedCommand) Attributes() (ParsedCommand, error) {
	if !c.Valid() {
		return ParsedCommand{}, fmt.Errorf("%w: verb=%q object=%q params=%q",
			ErrActionAttrsMissing, c.Verb, c.Object, c.Params)
	}
	return c, nil
}

// ActionKey joins a verb and an object into a registry key.
func ActionKey(verb, object string) string {
	return verb + ":" + object
}
