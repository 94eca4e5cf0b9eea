package domain

import "sort"

// PosixArgs renders runtime arguments as a POSIX-style argument vector, one
// "--key=value" entry per argument, in sorted key order for determinism.
func PosixArgs(args map[string]string) []string {
	if len(args) == 0 {
		return nil
	}

	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, "--"+k+"="+args[k])
	}
	return out
}
