package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/linehop/internal/jump"
	"github.com/dshills/linehop/internal/pattern"
)

// Loader registers the linehop module on a Lua state. Use with
// L.PreloadModule("linehop", Loader).
func Loader(L *lua.LState) int {
	mod := L.SetFuncs(L.NewTable(), exports)
	L.Push(mod)
	return 1
}

var exports = map[string]lua.LGFunction{
	"match":   luaMatch,
	"targets": luaTargets,
	"modes":   luaModes,
}

// luaMatch implements linehop.match(mode, line [, opts]).
// Returns start, finish (one-based, inclusive) or nil.
func luaMatch(L *lua.LState) int {
	m := checkMatcher(L, 1)
	line := L.CheckString(2)
	ctx, opts, _ := optionsArg(L, 3)

	span, ok := m.Match(line, ctx, opts)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(span.Start + 1))
	L.Push(lua.LNumber(span.End))
	return 2
}

// luaTargets implements linehop.targets(mode, lines [, opts]). lines is an
// array of line strings; the result is an array of
// {line=, start=, finish=, label=} tables with one-based lines and
// columns.
func luaTargets(L *lua.LState) int {
	m := checkMatcher(L, 1)
	tbl := L.CheckTable(2)
	ctx, opts, keys := optionsArg(L, 3)

	lines := make([]string, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		lines = append(lines, lua.LVAsString(tbl.RawGetInt(i)))
	}

	targets := jump.AssignLabels(jump.Collect(lines, m, ctx, opts), keys)

	out := L.NewTable()
	for _, t := range targets {
		row := L.NewTable()
		row.RawSetString("line", lua.LNumber(t.Line+1))
		row.RawSetString("start", lua.LNumber(t.Span.Start+1))
		row.RawSetString("finish", lua.LNumber(t.Span.End))
		row.RawSetString("label", lua.LString(t.Label))
		out.Append(row)
	}
	L.Push(out)
	return 1
}

// luaModes implements linehop.modes(): the list of catalogue mode names.
func luaModes(L *lua.LState) int {
	out := L.NewTable()
	for _, mode := range jump.Modes() {
		out.Append(lua.LString(mode.String()))
	}
	L.Push(out)
	return 1
}

// checkMatcher resolves argument n as a catalogue mode name.
func checkMatcher(L *lua.LState, n int) *jump.Matcher {
	mode, err := jump.ParseMode(L.CheckString(n))
	if err != nil {
		L.ArgError(n, err.Error())
		return nil
	}
	m, err := jump.ForMode(mode)
	if err != nil {
		L.ArgError(n, err.Error())
		return nil
	}
	return m
}

// optionsArg reads the optional options table at argument n: direction
// ("before"/"after"), cursor_line/cursor_col (one-based), column_first,
// smart_case, ignore_case, accent_fold, keys.
func optionsArg(L *lua.LState, n int) (jump.Context, jump.Options, string) {
	var ctx jump.Context
	var opts jump.Options
	keys := ""

	v := L.Get(n)
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return ctx, opts, keys
	}

	switch lua.LVAsString(tbl.RawGetString("direction")) {
	case "before":
		ctx.Direction = jump.DirectionBeforeCursor
	case "after":
		ctx.Direction = jump.DirectionAfterCursor
	}
	if lv, ok := tbl.RawGetString("cursor_line").(lua.LNumber); ok {
		ctx.Cursor.Line = int(lv) - 1
	}
	if lv, ok := tbl.RawGetString("cursor_col").(lua.LNumber); ok {
		ctx.Cursor.Col = int(lv) - 1
	}
	if lv, ok := tbl.RawGetString("column_first").(lua.LNumber); ok {
		ctx.Window.ColumnFirst = int(lv)
	}

	opts.SmartCase = lua.LVAsBool(tbl.RawGetString("smart_case"))
	opts.CaseInsensitive = lua.LVAsBool(tbl.RawGetString("ignore_case"))
	if lua.LVAsBool(tbl.RawGetString("accent_fold")) {
		opts.Mappings = pattern.AccentFolding{}
	}
	keys = lua.LVAsString(tbl.RawGetString("keys"))

	return ctx, opts, keys
}
