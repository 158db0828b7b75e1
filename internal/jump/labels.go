package jump

// DefaultKeys is the default hint alphabet, ordered by home-row
// reachability.
const DefaultKeys = "asdghklqwertyuiopzxcvbnmfj"

// AssignLabels gives each target a prefix-free hint label drawn from keys,
// in order. With few targets every label is a single key; beyond that, keys
// from the end of the alphabet become prefixes of longer labels. Fewer than
// two distinct keys cannot label more than one target, so such alphabets
// fall back to DefaultKeys. Returns the same slice for convenience.
func AssignLabels(targets []Target, keys string) []Target {
	alphabet := []rune(keys)
	if len(alphabet) < 2 {
		alphabet = []rune(DefaultKeys)
	}
	labels := generateLabels(len(targets), alphabet)
	for i := range targets {
		targets[i].Label = labels[i]
	}
	return targets
}

// generateLabels produces at least n prefix-free labels over the alphabet.
// It starts from the single-key labels and repeatedly expands the tail
// label into its one-key extensions until enough exist, so the earliest
// targets keep the shortest labels.
func generateLabels(n int, alphabet []rune) []string {
	labels := make([]string, 0, n)
	for _, r := range alphabet {
		labels = append(labels, string(r))
	}
	for len(labels) < n {
		last := labels[len(labels)-1]
		labels = labels[:len(labels)-1]
		for _, r := range alphabet {
			labels = append(labels, last+string(r))
		}
	}
	return labels[:n]
}
