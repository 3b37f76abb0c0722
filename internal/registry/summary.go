package registry

import (
	"io"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// PrintSummary writes the end-of-build report.
func PrintSummary(w io.Writer, res *Result) {
	printer.Fprintf(w, "\n🎉 Registry build complete!\n")
	printer.Fprintf(w, "📊 Total items: %d\n", res.Total)
	printer.Fprintf(w, "🆕 New items added: %d\n", res.Added)
	for _, name := range res.AddedNames {
		printer.Fprintf(w, "   + %s\n", name)
	}
	printer.Fprintf(w, "⏭️  Items skipped: %d\n", res.Skipped)
	if res.Failed > 0 {
		printer.Fprintf(w, "❌ Files failed: %d\n", res.Failed)
	}
	printer.Fprintf(w, "📁 Files in registry: %d\n", res.RegistryFiles)

	types := make([]string, 0, len(res.ByType))
	for t := range res.ByType {
		types = append(types, t)
	}
	sort.Strings(types)

	printer.Fprintf(w, "\n📈 Registry breakdown:\n")
	for _, t := range types {
		printer.Fprintf(w, "  %s: %d items\n", t, res.ByType[t])
	}
}
