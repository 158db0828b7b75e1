// Package pattern compiles the regular expressions the jump matchers run
// against line text. It owns literal escaping, smart-case negotiation, and
// the merge of alternate-spelling fragments supplied by a Mappings
// collaborator. Fixed catalogue patterns bypass the negotiation entirely
// via CompileRaw.
package pattern
