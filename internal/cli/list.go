package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/better-auth-ui/registry/internal/catalog"
	"github.com/better-auth-ui/registry/internal/config"
	"github.com/better-auth-ui/registry/internal/registry"
	"github.com/spf13/cobra"
)

var (
	listTypeFilter string
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged items",
	Long:  `List the items recorded in registry.json without building.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listTypeFilter, "type", "", "Filter by type (component, hook, ui, lib)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a catalog item for display.
type listEntry struct {
	Type         string   `json:"type"`
	Name         string   `json:"name"`
	Path         string   `json:"path"`
	Dependencies []string `json:"dependencies,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(projectRoot)
	if err != nil {
		return err
	}

	doc, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	typeFilter := listTypeFilter
	if typeFilter != "" && !strings.HasPrefix(typeFilter, "registry:") {
		typeFilter = "registry:" + typeFilter
	}
	if typeFilter != "" {
		if _, ok := registry.ParseCategory(typeFilter); !ok {
			return fmt.Errorf("unknown type %q", listTypeFilter)
		}
	}

	var entries []listEntry
	for _, it := range doc.Items {
		if typeFilter != "" && it.Type != typeFilter {
			continue
		}
		entry := listEntry{
			Type:         strings.TrimPrefix(it.Type, "registry:"),
			Name:         it.Name,
			Dependencies: it.Dependencies,
		}
		if len(it.Files) > 0 {
			entry.Path = it.Files[0].Path
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		if listTypeFilter != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No items matching --type=%s\n", listTypeFilter)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No items cataloged yet.")
		}
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TYPE\tNAME\tPATH\tDEPENDENCIES")
	for _, e := range entries {
		d := "-"
		if len(e.Dependencies) > 0 {
			d = strings.Join(e.Dependencies, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Type, e.Name, e.Path, d)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
