package domain

import (
	"fmt"
	"sort"
)

// ActionsKey is the top-level document key holding action definitions.
const ActionsKey = "actions"

// Document is a parsed configuration file: string keys mapping to scalars,
// lists or nested documents (represented as map[string]any).
type Document map[string]any

// ActionDefinition is one entry under "actions".
type ActionDefinition struct {
	Key     string
	Context string
	Path    string
}

// Restricted reports whether the action is bound to a context.
func (a ActionDefinition) Restricted() bool {
	return a.Context != ""
}

// Action returns the definition registered under key, if any.
func (d Document) Action(key string) (ActionDefinition, bool) {
	actions, ok := d[ActionsKey].(map[string]any)
	if !ok {
		return ActionDefinition{}, false
	}
	raw, ok := actions[key]
	if !ok {
		return ActionDefinition{}, false
	}
	fields, _ := raw.(map[string]any)
	return ActionDefinition{
		Key:     key,
		Context: scalarString(fields["context"]),
		Path:    scalarString(fields["path"]),
	}, true
}

// Actions lists every registered action sorted by key.
func (d Document) Actions() []ActionDefinition {
	actions, ok := d[ActionsKey].(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(actions))
	for k := range actions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	defs := make([]ActionDefinition, 0, len(keys))
	for _, k := range keys {
		def, _ := d.Action(k)
		defs = append(defs, def)
	}
	return defs
}

func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
