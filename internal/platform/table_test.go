package platform_test

import (
	"strings"
	"testing"

	"github.com/elaraai/east-sub001/internal/platform"
	"github.com/elaraai/east-sub001/internal/types"
)

func TestRegisterRejectsDuplicateNames(t *testing.T) {
	table := platform.NewTable()
	entry := platform.Entry{Name: "fetch", Inputs: []types.Type{types.String}, Output: types.String, Kind: platform.Sync}
	if err := table.Register(entry); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := table.Register(entry); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestLookup(t *testing.T) {
	table := platform.NewTable()
	table.MustRegister(platform.Entry{Name: "now", Output: types.DateTime, Kind: platform.Async})
	entry, ok := table.Lookup("now")
	if !ok {
		t.Fatalf("expected now to be registered")
	}
	if entry.Kind != platform.Async {
		t.Fatalf("expected async kind")
	}
	if _, ok := table.Lookup("missing"); ok {
		t.Fatalf("expected missing to be unregistered")
	}
}

func TestLoadYAML(t *testing.T) {
	doc := `
- name: fetch
  inputs: [String]
  output: String
  kind: async
- name: log
  inputs: [String]
  output: Null
  kind: sync
`
	table, err := platform.LoadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", table.Len())
	}
	fetch, ok := table.Lookup("fetch")
	if !ok || fetch.Kind != platform.Async || !fetch.Output.Equals(types.String) {
		t.Fatalf("unexpected fetch entry: %+v", fetch)
	}
}

func TestLoadYAMLRejectsDuplicateNames(t *testing.T) {
	doc := `
- name: fetch
  output: String
  kind: sync
- name: fetch
  output: Integer
  kind: sync
`
	if _, err := platform.LoadYAML(strings.NewReader(doc)); err == nil {
		t.Fatalf("expected duplicate name to fail loading")
	}
}
