// Package cli defines the Cobra command tree for the registry builder. The
// root command performs one full build; list, watch, and version are
// registered from their own files. Commands only resolve configuration and
// format output; the build itself lives in the registry package.
package cli
