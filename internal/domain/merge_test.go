package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     Document
		override Document
		want     Document
	}{
		{
			name:     "override leaf wins",
			base:     Document{"a": 1},
			override: Document{"a": 2},
			want:     Document{"a": 2},
		},
		{
			name:     "keys only in base are kept",
			base:     Document{"a": 1, "b": "x"},
			override: Document{"a": 2},
			want:     Document{"a": 2, "b": "x"},
		},
		{
			name:     "keys only in override are added",
			base:     Document{"a": 1},
			override: Document{"c": true},
			want:     Document{"a": 1, "c": true},
		},
		{
			name: "nested mappings merge recursively",
			base: Document{"actions": map[string]any{
				"create:file": map[string]any{"context": nil, "path": "default.sh"},
				"list:files":  map[string]any{"context": "usr", "path": "ls.sh"},
			}},
			override: Document{"actions": map[string]any{
				"create:file": map[string]any{"path": "user.sh"},
			}},
			want: Document{"actions": map[string]any{
				"create:file": map[string]any{"context": nil, "path": "user.sh"},
				"list:files":  map[string]any{"context": "usr", "path": "ls.sh"},
			}},
		},
		{
			name:     "scalar override replaces mapping",
			base:     Document{"actions": map[string]any{"a:b": map[string]any{"path": "x"}}},
			override: Document{"actions": nil},
			want:     Document{"actions": nil},
		},
		{
			name:     "mapping override replaces scalar",
			base:     Document{"logan": "off"},
			override: Document{"logan": map[string]any{"options": nil}},
			want:     Document{"logan": map[string]any{"options": nil}},
		},
		{
			name:     "lists are replaced not merged",
			base:     Document{"tags": []any{"a", "b"}},
			override: Document{"tags": []any{"c"}},
			want:     Document{"tags": []any{"c"}},
		},
		{
			name:     "nil base",
			base:     nil,
			override: Document{"a": 1},
			want:     Document{"a": 1},
		},
		{
			name:     "nil override",
			base:     Document{"a": 1},
			override: nil,
			want:     Document{"a": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.base, tt.override)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := Document{"actions": map[string]any{
		"create:file": map[string]any{"path": "default.sh"},
	}}
	override := Document{"actions": map[string]any{
		"create:file": map[string]any{"path": "user.sh"},
		"goto:server": map[string]any{"context": "aws", "path": "ssh.sh"},
	}}

	merged := Merge(base, override)
	merged["actions"].(map[string]any)["create:file"].(map[string]any)["path"] = "changed.sh"
	merged["actions"].(map[string]any)["goto:server"].(map[string]any)["path"] = "changed.sh"

	wantBase := Document{"actions": map[string]any{
		"create:file": map[string]any{"path": "default.sh"},
	}}
	if diff := cmp.Diff(wantBase, base); diff != "" {
		t.Fatalf("base mutated (-want +got):\n%s", diff)
	}
	if got := override["actions"].(map[string]any)["goto:server"].(map[string]any)["path"]; got != "ssh.sh" {
		t.Fatalf("override mutated: %v", got)
	}
}

func TestMergeIsDeterministic(t *testing.T) {
	base := Document{"x": map[string]any{"a": 1, "b": map[string]any{"c": 2}}}
	override := Document{"x": map[string]any{"b": map[string]any{"d": 3}}}
	first := Merge(base, override)
	second := Merge(base, override)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Merge() not deterministic:\n%s", diff)
	}
}
