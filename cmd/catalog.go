package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biblio-project/bibctl/internal/library"
	"github.com/biblio-project/bibctl/internal/output"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the library catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog materials",
	Long: `List the materials in the catalog, optionally filtered by kind.

Examples:
  bibctl catalog list                  # All materials
  bibctl catalog list --kind libro     # Books only
  bibctl catalog list --kind digital --json`,
	Args: cobra.NoArgs,
	RunE: runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <material-id>",
	Short: "Show one material in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the catalog",
	Long: `Search materials by title, author, or category. Exactly one
filter must be given.

Examples:
  bibctl catalog search --title rayuela
  bibctl catalog search --author borges
  bibctl catalog search --category novela`,
	Args: cobra.NoArgs,
	RunE: runCatalogSearch,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogSearchCmd)

	catalogListCmd.Flags().String("kind", "", "filter by kind (libro, revista, digital)")
	catalogListCmd.Flags().Bool("json", false, "output as JSON")

	catalogShowCmd.Flags().Bool("json", false, "output as JSON")

	catalogSearchCmd.Flags().String("title", "", "search by title")
	catalogSearchCmd.Flags().String("author", "", "search by author")
	catalogSearchCmd.Flags().String("category", "", "search by category")
	catalogSearchCmd.Flags().Bool("json", false, "output as JSON")
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	if _, err := ensureAuthenticated(); err != nil {
		return err
	}

	kind, _ := cmd.Flags().GetString("kind")

	var materials []library.Material
	var err error
	switch library.MaterialKind(kind) {
	case "":
		materials, err = client.Materials(cmd.Context())
	case library.KindBook:
		materials, err = client.Books(cmd.Context())
	case library.KindMagazine:
		materials, err = client.Magazines(cmd.Context())
	case library.KindDigital:
		materials, err = client.DigitalMaterials(cmd.Context())
	default:
		return &output.CLIError{
			Summary:    fmt.Sprintf("unknown material kind: %s", kind),
			Suggestion: "use libro, revista, or digital",
			ExitCode:   output.ExitUsageError,
		}
	}
	if err != nil {
		return output.FromBackendError(err)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd, materials)
	}

	printMaterialsTable(cmd, materials)
	newPrinter().PrintHints("catalog list")
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	if _, err := ensureAuthenticated(); err != nil {
		return err
	}

	material, err := client.Material(cmd.Context(), args[0])
	if err != nil {
		return output.FromBackendError(err)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd, material)
	}

	printer := newPrinter()
	printer.Header(material.Title)

	table := output.NewTableWithWriter(cmd.OutOrStdout(), []string{"KEY", "VALUE"})
	table.AddRow([]string{"id", material.ID})
	table.AddRow([]string{"kind", string(material.Kind)})
	table.AddRow([]string{"authors", strings.Join(material.Authors, ", ")})
	table.AddRow([]string{"published", material.PublicationDate})
	table.AddRow([]string{"publisher", material.Publisher})
	table.AddRow([]string{"language", material.Language})
	table.AddRow([]string{"categories", strings.Join(material.Categories, ", ")})
	table.AddRow([]string{"availability", printer.AvailabilityBadge(material.Available)})

	switch material.Kind {
	case library.KindBook:
		table.AddRow([]string{"isbn", material.ISBN})
		table.AddRow([]string{"pages", fmt.Sprintf("%d", material.Pages)})
		table.AddRow([]string{"format", material.BookFormat})
	case library.KindMagazine:
		table.AddRow([]string{"issn", material.ISSN})
		table.AddRow([]string{"volume", fmt.Sprintf("%d", material.Volume)})
		table.AddRow([]string{"number", fmt.Sprintf("%d", material.Number)})
		table.AddRow([]string{"frequency", material.Frequency})
	case library.KindDigital:
		table.AddRow([]string{"url", material.URL})
		table.AddRow([]string{"format", material.DigitalFormat})
		table.AddRow([]string{"size", fmt.Sprintf("%.1f MB", material.SizeMB)})
	}
	table.Render()

	printer.PrintHints("catalog show")
	return nil
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	if _, err := ensureAuthenticated(); err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	category, _ := cmd.Flags().GetString("category")

	var materials []library.Material
	var err error
	switch {
	case title != "" && author == "" && category == "":
		materials, err = client.SearchByTitle(cmd.Context(), title)
	case author != "" && title == "" && category == "":
		materials, err = client.SearchByAuthor(cmd.Context(), author)
	case category != "" && title == "" && author == "":
		materials, err = client.SearchByCategory(cmd.Context(), category)
	default:
		return &output.CLIError{
			Summary:  "exactly one of --title, --author, --category must be given",
			ExitCode: output.ExitUsageError,
		}
	}
	if err != nil {
		return output.FromBackendError(err)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd, materials)
	}

	printMaterialsTable(cmd, materials)
	newPrinter().PrintHints("catalog search")
	return nil
}

func printMaterialsTable(cmd *cobra.Command, materials []library.Material) {
	printer := newPrinter()
	if len(materials) == 0 {
		printer.Info("No materials found")
		return
	}

	table := output.NewTableWithWriter(cmd.OutOrStdout(),
		[]string{"ID", "TITLE", "AUTHORS", "KIND", "AVAILABILITY"})
	for _, m := range materials {
		table.AddRow([]string{
			m.ID,
			m.Title,
			strings.Join(m.Authors, ", "),
			string(m.Kind),
			printer.AvailabilityBadge(m.Available),
		})
	}
	table.Render()
	printer.Print("%s", printer.Dim(fmt.Sprintf("%d materials", len(materials))))
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
