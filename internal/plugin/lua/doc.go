// Package lua exposes the jump matcher catalogue to Lua plugins.
//
// Hosts preload the module on their Lua state:
//
//	L.PreloadModule("linehop", lua.Loader)
//
// Scripts then require it:
//
//	local linehop = require("linehop")
//	local s, e = linehop.match("word", "  hello")   -- 3, 7
//	local targets = linehop.targets("camel", lines, { direction = "after" })
//
// Offsets crossing the bridge are one-based and inclusive, so
// string.sub(line, s, e) extracts the matched text.
package lua
