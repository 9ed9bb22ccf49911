// Package flagx holds small helpers for sharing one command line between
// several independent flag sets.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// name strips the leading dashes and any "=value" suffix, so "-c", "--c" and
// "--c=x" all resolve to "c" like the standard flag package does.
func name(arg string) string {
	n := strings.TrimLeft(arg, "-")
	if i := strings.IndexByte(n, '='); i >= 0 {
		n = n[:i]
	}
	return n
}

// FilterArgs keeps only the flags listed in allowed (names without dashes)
// together with their values. Both "-f value" and "-f=value" forms are
// recognized, single or double dash. Everything else is dropped, so the
// result can be fed to a FlagSet that only knows about a subset of flags.
func FilterArgs(args []string, allowed ...string) []string {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[strings.TrimLeft(a, "-")] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" || arg == "--" {
			continue
		}
		if _, ok := set[name(arg)]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// ConfigFile returns the config file path given with -c or -config, or ""
// when neither is present. The last occurrence wins.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, "c", "config"))

	return path
}
