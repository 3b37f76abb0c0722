// Package deps derives the dependencies of a registry source file from its
// raw text. Extraction is pattern based: import statements are matched with a
// regular expression and their specifiers are checked against a table of
// known packages. Nothing is parsed, so commented-out imports still count and
// dynamic imports or re-exports are missed.
//
// Callers depend on the Extractor interface so that a parser-based
// implementation can replace PatternExtractor without other changes.
package deps
