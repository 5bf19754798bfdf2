package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/doeshing/logan/internal/domain"
)

func TestDocumentAction(t *testing.T) {
	doc := domain.Document{"actions": map[string]any{
		"create:file": map[string]any{"context": nil, "path": "create_file.sh"},
		"goto:server": map[string]any{"context": "aws", "path": "ssh.sh"},
		"open:port":   map[string]any{"context": 8080, "path": "open.sh"},
		"broken:one":  nil,
	}}

	tests := []struct {
		key     string
		wantOK  bool
		context string
		path    string
	}{
		{key: "create:file", wantOK: true, path: "create_file.sh"},
		{key: "goto:server", wantOK: true, context: "aws", path: "ssh.sh"},
		{key: "open:port", wantOK: true, context: "8080", path: "open.sh"},
		{key: "broken:one", wantOK: true},
		{key: "missing:key"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := doc.Action(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("Action(%q) ok = %v", tt.key, ok)
			}
			if got.Context != tt.context || got.Path != tt.path {
				t.Fatalf("Action(%q) = %+v", tt.key, got)
			}
		})
	}
}

func TestDocumentActionsSorted(t *testing.T) {
	doc := domain.Document{"actions": map[string]any{
		"list:files":  map[string]any{"path": "ls.sh"},
		"create:file": map[string]any{"path": "touch.sh"},
	}}
	actions := doc.Actions()
	if len(actions) != 2 || actions[0].Key != "create:file" || actions[1].Key != "list:files" {
		t.Fatalf("unexpected actions %+v", actions)
	}
	if (domain.Document{}).Actions() != nil {
		t.Fatal("expected no actions for empty document")
	}
	if _, ok := (domain.Document{"actions": "none"}).Action("create:file"); ok {
		t.Fatal("non-mapping actions must not resolve")
	}
}

func TestLayout(t *testing.T) {
	root := filepath.Join("..", "fixtures")
	layout := domain.NewLayout(root)

	if layout.DefaultConfigPath != filepath.Join(root, "loganrc.default") {
		t.Fatalf("default config path = %s", layout.DefaultConfigPath)
	}
	if layout.UserConfigPath != filepath.Join(root, "loganrc") {
		t.Fatalf("user config path = %s", layout.UserConfigPath)
	}
	if layout.CachePath != filepath.Join(root, "logan.cache") {
		t.Fatalf("cache path = %s", layout.CachePath)
	}
	if layout.ActionsDir != filepath.Join(root, "actions") {
		t.Fatalf("actions dir = %s", layout.ActionsDir)
	}
}
