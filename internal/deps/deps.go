package deps

import (
	"bytes"
	"regexp"
	"strings"
)

// UtilsToken is the internal dependency recorded for files that use the
// shared class-name merging helper.
const UtilsToken = "utils"

// utilsMarker is the text that marks a call to the class-name merging helper.
const utilsMarker = "cn("

var importPattern = regexp.MustCompile(`import\s+.*?\s+from\s+['"]([^'"]+)['"]`)

// knownPackages are the external packages recorded when imported by name.
var knownPackages = []string{
	"react-hook-form",
	"zod",
	"better-auth",
	"lucide-react",
	"class-variance-authority",
	"clsx",
	"tailwind-merge",
	"sonner",
}

// knownScopes are namespace prefixes whose members are recorded verbatim.
var knownScopes = []string{
	"@radix-ui/",
}

// aliases map an import specifier to the package that provides it.
var aliases = map[string]string{
	"@hookform/resolvers/zod": "@hookform/resolvers",
}

// Dependencies holds the dependencies found in one file. Both lists are
// deduplicated and keep first-seen order.
type Dependencies struct {
	External []string // third-party package names
	Internal []string // in-repository capabilities, e.g. "utils"
}

// Extractor derives dependencies from file content.
type Extractor interface {
	Extract(content []byte) Dependencies
}

// PatternExtractor is the text-pattern Extractor.
type PatternExtractor struct {
	exact map[string]string
}

// NewPatternExtractor returns an extractor recognizing the built-in package
// table plus any extra package names.
func NewPatternExtractor(extra ...string) *PatternExtractor {
	exact := make(map[string]string, len(knownPackages)+len(aliases)+len(extra))
	for _, name := range knownPackages {
		exact[name] = name
	}
	for spec, name := range aliases {
		exact[spec] = name
	}
	for _, name := range extra {
		name = strings.TrimSpace(name)
		if name != "" {
			exact[name] = name
		}
	}
	return &PatternExtractor{exact: exact}
}

// Extract implements Extractor.
func (e *PatternExtractor) Extract(content []byte) Dependencies {
	var deps Dependencies
	seen := make(map[string]bool)

	for _, m := range importPattern.FindAllSubmatch(content, -1) {
		spec := string(m[1])
		if isRelative(spec) {
			continue
		}
		name, ok := e.recognize(spec)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		deps.External = append(deps.External, name)
	}

	if bytes.Contains(content, []byte(utilsMarker)) {
		deps.Internal = append(deps.Internal, UtilsToken)
	}

	return deps
}

// recognize maps a module specifier to the package name recorded for it.
func (e *PatternExtractor) recognize(spec string) (string, bool) {
	if name, ok := e.exact[spec]; ok {
		return name, true
	}
	for _, scope := range knownScopes {
		if strings.HasPrefix(spec, scope) {
			return spec, true
		}
	}
	return "", false
}

// isRelative reports whether a specifier points inside the project.
func isRelative(spec string) bool {
	return strings.HasPrefix(spec, ".") || strings.HasPrefix(spec, "/")
}
