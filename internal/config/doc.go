// Package config loads the host settings that drive jump matching: the
// case-folding policy, the accent-fold toggle, and the hint label alphabet.
// Settings live in a TOML file layered over built-in defaults.
package config
