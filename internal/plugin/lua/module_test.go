package lua

import (
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func newState(t *testing.T) *lua.LState {
	t.Helper()
	L := lua.NewState()
	t.Cleanup(L.Close)
	L.PreloadModule("linehop", Loader)
	return L
}

func TestLuaMatch(t *testing.T) {
	L := newState(t)
	script := `
local linehop = require("linehop")
s, e = linehop.match("word", "  hello_world 42")
text = string.sub("  hello_world 42", s, e)
`
	if err := L.DoString(script); err != nil {
		t.Fatalf("DoString: %v", err)
	}

	if got := lua.LVAsNumber(L.GetGlobal("s")); got != 3 {
		t.Errorf("s = %v, want 3", got)
	}
	if got := lua.LVAsNumber(L.GetGlobal("e")); got != 13 {
		t.Errorf("e = %v, want 13", got)
	}
	if got := lua.LVAsString(L.GetGlobal("text")); got != "hello_world" {
		t.Errorf("text = %q, want hello_world", got)
	}
}

func TestLuaMatchNoHit(t *testing.T) {
	L := newState(t)
	if err := L.DoString(`r = require("linehop").match("skip-blank", "   ")`); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if L.GetGlobal("r") != lua.LNil {
		t.Errorf("r = %v, want nil", L.GetGlobal("r"))
	}
}

func TestLuaTargets(t *testing.T) {
	L := newState(t)
	script := `
local linehop = require("linehop")
targets = linehop.targets("word", { "foo bar", "baz" })
n = #targets
first_line = targets[1].line
first_start = targets[1].start
first_label = targets[1].label
`
	if err := L.DoString(script); err != nil {
		t.Fatalf("DoString: %v", err)
	}

	if got := lua.LVAsNumber(L.GetGlobal("n")); got != 3 {
		t.Errorf("n = %v, want 3", got)
	}
	if got := lua.LVAsNumber(L.GetGlobal("first_line")); got != 1 {
		t.Errorf("first_line = %v, want 1", got)
	}
	if got := lua.LVAsNumber(L.GetGlobal("first_start")); got != 1 {
		t.Errorf("first_start = %v, want 1", got)
	}
	if got := lua.LVAsString(L.GetGlobal("first_label")); got == "" {
		t.Error("first target should carry a label")
	}
}

func TestLuaTargetsDirection(t *testing.T) {
	L := newState(t)
	script := `
local linehop = require("linehop")
targets = linehop.targets("word", { "foo bar" },
	{ direction = "after", cursor_line = 1, cursor_col = 2 })
n = #targets
start = targets[1].start
`
	if err := L.DoString(script); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	if got := lua.LVAsNumber(L.GetGlobal("n")); got != 1 {
		t.Errorf("n = %v, want 1", got)
	}
	if got := lua.LVAsNumber(L.GetGlobal("start")); got != 5 {
		t.Errorf("start = %v, want 5 (the word after the cursor)", got)
	}
}

func TestLuaModes(t *testing.T) {
	L := newState(t)
	if err := L.DoString(`m = table.concat(require("linehop").modes(), ",")`); err != nil {
		t.Fatalf("DoString: %v", err)
	}
	got := lua.LVAsString(L.GetGlobal("m"))
	for _, want := range []string{"word", "camel", "line-start", "skip-blank", "vertical", "anywhere"} {
		if !strings.Contains(got, want) {
			t.Errorf("modes %q missing %q", got, want)
		}
	}
}

func TestLuaUnknownModeRaises(t *testing.T) {
	L := newState(t)
	err := L.DoString(`require("linehop").match("bogus", "text")`)
	if err == nil {
		t.Fatal("unknown mode should raise a Lua error")
	}
	if !strings.Contains(err.Error(), "unknown jump mode") {
		t.Errorf("error = %v", err)
	}
}
