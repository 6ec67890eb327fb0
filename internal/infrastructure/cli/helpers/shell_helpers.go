package helpers

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cpy-helpers/internal/domain"
)

// CompleteBoards offers the known board identifiers for --prefer.
func CompleteBoards(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, kind := range domain.BoardKinds() {
		names = append(names, string(kind))
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// CompleteShells offers the supported shells for --shell.
func CompleteShells(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, kind := range domain.ShellKinds() {
		names = append(names, string(kind))
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// filterPrefix keeps the values starting with prefix, case-insensitively
func filterPrefix(values []string, prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return values
	}
	var out []string
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}
