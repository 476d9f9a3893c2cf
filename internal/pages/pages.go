// Package pages holds the static About and Privacy content.
package pages

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed content/*.md
var content embed.FS

// Names lists the available pages.
func Names() []string {
	entries, _ := content.ReadDir("content")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	sort.Strings(names)
	return names
}

// Markdown returns the source of the named page.
func Markdown(name string) (string, error) {
	data, err := content.ReadFile("content/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("page %q not found", name)
	}
	return string(data), nil
}
