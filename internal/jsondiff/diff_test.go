package jsondiff

import (
	"testing"
)

func TestDiffIdentical(t *testing.T) {
	a := map[string]any{"score": float64(60), "level": "AT_RISK"}
	b := map[string]any{"score": float64(60), "level": "AT_RISK"}
	if ops := Diff(a, b, ""); len(ops) != 0 {
		t.Fatalf("expected empty patch, got %v", ops)
	}
}

func TestDiffReplace(t *testing.T) {
	a := map[string]any{"score": float64(60)}
	b := map[string]any{"score": float64(80)}
	ops := Diff(a, b, "")
	if len(ops) != 1 {
		t.Fatalf("expected 1 op, got %d", len(ops))
	}
	if ops[0].Op != "replace" || ops[0].Path != "/score" {
		t.Fatalf("unexpected op %+v", ops[0])
	}
}

func TestDiffAddAndRemove(t *testing.T) {
	a := map[string]any{"old": true}
	b := map[string]any{"new": true}
	ops := Diff(a, b, "")
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}

	byOp := map[string]string{}
	for _, op := range ops {
		byOp[op.Op] = op.Path
	}
	if byOp["remove"] != "/old" || byOp["add"] != "/new" {
		t.Fatalf("unexpected ops %v", ops)
	}
}

func TestDiffNestedArray(t *testing.T) {
	a := map[string]any{"items": []any{map[string]any{"status": "INCOMPLETE"}}}
	b := map[string]any{"items": []any{map[string]any{"status": "COMPLETE"}, map[string]any{"status": "PARTIAL"}}}
	ops := Diff(a, b, "")
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %v", ops)
	}
	if ops[0].Path != "/items/0/status" || ops[0].Op != "replace" {
		t.Fatalf("unexpected first op %+v", ops[0])
	}
	if ops[1].Path != "/items/1" || ops[1].Op != "add" {
		t.Fatalf("unexpected second op %+v", ops[1])
	}
}

func TestDiffNilToValue(t *testing.T) {
	ops := Diff(nil, map[string]any{"a": float64(1)}, "")
	if len(ops) != 1 || ops[0].Op != "replace" || ops[0].Path != "" {
		t.Fatalf("unexpected ops %v", ops)
	}
}

func TestDiffEscapesPointerTokens(t *testing.T) {
	a := map[string]any{"a/b": float64(1)}
	b := map[string]any{"a/b": float64(2)}
	ops := Diff(a, b, "")
	if len(ops) != 1 || ops[0].Path != "/a~1b" {
		t.Fatalf("unexpected ops %v", ops)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	type inner struct {
		Name string `json:"name"`
	}
	generic, err := Snapshot(inner{Name: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := generic.(map[string]any)
	if !ok || m["name"] != "x" {
		t.Fatalf("unexpected snapshot %v", generic)
	}
}
