package main

import (
	"os"
	"strings"

	"showdate-cli/internal/cli"
)

func isDateValue(s string) bool {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" || strings.Trim(p, "0123456789") != "" {
			return false
		}
	}
	return true
}

// rewriteBareValueArgs turns `showdate 2024-6-3` into `showdate --value 2024-6-3`.
// Only the first positional token is considered, so subcommand arguments
// (e.g. `showdate parse 2024-6-3`) are left alone.
func rewriteBareValueArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}
	valueFlags := map[string]bool{
		"--policy":    true,
		"--today":     true,
		"--value":     true,
		"--format":    true,
		"--log-level": true,
		"--title":     true,
	}
	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if !isDateValue(a) {
			return argv
		}
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "--value", a)
		out = append(out, argv[i+1:]...)
		return out
	}
	return argv
}

func main() {
	os.Args = rewriteBareValueArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
