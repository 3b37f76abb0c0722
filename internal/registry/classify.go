package registry

import (
	"path/filepath"
	"strings"
)

// classifyRule maps a path prefix to a category.
type classifyRule struct {
	prefix   string
	category Category
}

// classifyRules are checked in order; the first matching prefix wins.
var classifyRules = []classifyRule{
	{"hooks/", Hook},
	{"components/ui/", UIPrimitive},
	{"lib/", Library},
	{"types/", Library},
}

// Classify returns the category of a path relative to the source directory.
// Paths matching no rule are components.
func Classify(relPath string) Category {
	p := filepath.ToSlash(relPath)
	for _, r := range classifyRules {
		if strings.HasPrefix(p, r.prefix) {
			return r.category
		}
	}
	return Component
}
