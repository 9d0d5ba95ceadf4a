// Package flagx contains helpers for layered command-line parsing, where
// several components each own a subset of the process flags.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns only the arguments whose flag name appears in
// allowedFlags, together with their values. Both "-f value" and
// "--flag=value" forms are supported. This lets a FlagSet parse a shared
// os.Args without choking on flags owned by another component.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		// "--flag=value" form
		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		// "-f value" form; the value, if present, follows as its own arg
		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// JSONConfigFlags scans os.Args for a -c/-config flag and returns its
// value, or "" if the flag is absent. A dedicated FlagSet is used so the
// main config FlagSets stay unaware of it.
func JSONConfigFlags() string {
	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json-config", flag.ContinueOnError)
	c := fs.String("c", "", "path to JSON config file")
	cfg := fs.String("config", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return ""
	}

	if *c != "" {
		return *c
	}
	return *cfg
}
