package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/biblio-project/bibctl/internal/library"
	"github.com/biblio-project/bibctl/internal/output"
	"github.com/biblio-project/bibctl/internal/validate"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative operations",
	Long:  `Manage users and the catalog. Every subcommand requires the administrator role.`,
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage library members",
}

var adminUsersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered members",
	Args:  cobra.NoArgs,
	RunE:  runAdminUsersList,
}

var adminUsersShowCmd = &cobra.Command{
	Use:   "show <user-id>",
	Short: "Show a member with their loans and reviews",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminUsersShow,
}

var adminMaterialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Manage the catalog",
}

var adminAddBookCmd = &cobra.Command{
	Use:   "add-book",
	Short: "Add a book to the catalog",
	Long: `Add a book.

Example:
  bibctl admin materials add-book --title Rayuela --author "Julio Cortázar" \
    --published 1963-06-28 --publisher Sudamericana --language es \
    --isbn 978-84-376-0494-7 --pages 736`,
	Args: cobra.NoArgs,
	RunE: runAdminAddBook,
}

var adminUpdateBookCmd = &cobra.Command{
	Use:   "update-book <material-id>",
	Short: "Update a book",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminUpdateBook,
}

var adminAddMagazineCmd = &cobra.Command{
	Use:   "add-magazine",
	Short: "Add a magazine to the catalog",
	Args:  cobra.NoArgs,
	RunE:  runAdminAddMagazine,
}

var adminAddDigitalCmd = &cobra.Command{
	Use:   "add-digital",
	Short: "Add a digital material to the catalog",
	Args:  cobra.NoArgs,
	RunE:  runAdminAddDigital,
}

var adminRmBookCmd = &cobra.Command{
	Use:   "rm-book <material-id>",
	Short: "Remove a book from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminRmBook,
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminMaterialsCmd)
	adminUsersCmd.AddCommand(adminUsersListCmd)
	adminUsersCmd.AddCommand(adminUsersShowCmd)
	adminMaterialsCmd.AddCommand(adminAddBookCmd)
	adminMaterialsCmd.AddCommand(adminUpdateBookCmd)
	adminMaterialsCmd.AddCommand(adminAddMagazineCmd)
	adminMaterialsCmd.AddCommand(adminAddDigitalCmd)
	adminMaterialsCmd.AddCommand(adminRmBookCmd)

	adminUsersListCmd.Flags().Bool("json", false, "output as JSON")
	adminUsersShowCmd.Flags().Bool("json", false, "output as JSON")

	for _, c := range []*cobra.Command{adminAddBookCmd, adminUpdateBookCmd, adminAddMagazineCmd, adminAddDigitalCmd} {
		c.Flags().String("title", "", "title")
		c.Flags().StringSlice("author", nil, "author (repeatable)")
		c.Flags().String("published", "", "publication date (YYYY-MM-DD)")
		c.Flags().String("publisher", "", "publisher")
		c.Flags().String("language", "", "language code")
		c.Flags().StringSlice("category", nil, "category (repeatable)")
	}

	for _, c := range []*cobra.Command{adminAddBookCmd, adminUpdateBookCmd} {
		c.Flags().String("isbn", "", "ISBN")
		c.Flags().Int("pages", 0, "page count")
		c.Flags().String("format", "", "format (e.g. tapa blanda)")
	}

	adminAddMagazineCmd.Flags().String("issn", "", "ISSN")
	adminAddMagazineCmd.Flags().Int("volume", 0, "volume")
	adminAddMagazineCmd.Flags().Int("number", 0, "issue number")
	adminAddMagazineCmd.Flags().String("frequency", "", "publication frequency")

	adminAddDigitalCmd.Flags().String("url", "", "access URL")
	adminAddDigitalCmd.Flags().String("format", "", "file format (e.g. PDF, EPUB)")
	adminAddDigitalCmd.Flags().Float64("size", 0, "size in MB")
}

func runAdminUsersList(cmd *cobra.Command, args []string) error {
	if _, err := ensureAdmin(); err != nil {
		return err
	}

	users, err := client.Users(cmd.Context())
	if err != nil {
		return output.FromBackendError(err)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd, users)
	}

	printer := newPrinter()
	table := output.NewTableWithWriter(cmd.OutOrStdout(),
		[]string{"ID", "NAME", "EMAIL", "ROLE", "REGISTERED"})
	for _, u := range users {
		table.AddRow([]string{
			u.ID,
			u.GivenName + " " + u.FamilyName,
			u.Email,
			string(u.Role),
			u.RegisteredAt,
		})
	}
	table.Render()
	printer.Print("%s", printer.Dim(fmt.Sprintf("%d members", len(users))))
	return nil
}

func runAdminUsersShow(cmd *cobra.Command, args []string) error {
	if _, err := ensureAdmin(); err != nil {
		return err
	}

	user, err := client.User(cmd.Context(), args[0])
	if err != nil {
		return output.FromBackendError(err)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd, user)
	}

	printer := newPrinter()
	printer.Header(user.GivenName + " " + user.FamilyName)

	table := output.NewTableWithWriter(cmd.OutOrStdout(), []string{"KEY", "VALUE"})
	table.AddRow([]string{"id", user.ID})
	table.AddRow([]string{"email", user.Email})
	table.AddRow([]string{"role", string(user.Role)})
	table.AddRow([]string{"registered", user.RegisteredAt})
	table.Render()

	if len(user.Loans) > 0 {
		printer.Header("Loans")
		loans := output.NewTableWithWriter(cmd.OutOrStdout(),
			[]string{"ID", "MATERIAL", "DUE", "STATUS"})
		for _, l := range user.Loans {
			loans.AddRow([]string{l.ID, l.Material.Title, l.DueDate, printer.LoanBadge(l.Status)})
		}
		loans.Render()
	}

	if len(user.Reviews) > 0 {
		printer.Header("Reviews")
		reviews := output.NewTableWithWriter(cmd.OutOrStdout(),
			[]string{"ID", "RATING", "COMMENT"})
		for _, r := range user.Reviews {
			reviews.AddRow([]string{r.ID, strings.Repeat("★", r.Rating), r.Comment})
		}
		reviews.Render()
	}

	return nil
}

func bookInputFromFlags(cmd *cobra.Command) library.BookInput {
	title, _ := cmd.Flags().GetString("title")
	authors, _ := cmd.Flags().GetStringSlice("author")
	published, _ := cmd.Flags().GetString("published")
	publisher, _ := cmd.Flags().GetString("publisher")
	language, _ := cmd.Flags().GetString("language")
	categories, _ := cmd.Flags().GetStringSlice("category")
	isbn, _ := cmd.Flags().GetString("isbn")
	pages, _ := cmd.Flags().GetInt("pages")
	format, _ := cmd.Flags().GetString("format")

	return library.BookInput{
		Title:           title,
		Authors:         authors,
		PublicationDate: published,
		Publisher:       publisher,
		Language:        language,
		Categories:      categories,
		ISBN:            isbn,
		Pages:           pages,
		Format:          format,
	}
}

func runAdminAddBook(cmd *cobra.Command, args []string) error {
	if _, err := ensureAdmin(); err != nil {
		return err
	}

	input := bookInputFromFlags(cmd)
	if err := validate.New().Struct(input); err != nil {
		return &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	material, err := client.CreateBook(cmd.Context(), input)
	if err != nil {
		return output.FromBackendError(err)
	}

	newPrinter().Success("Book %q added with id %s", material.Title, material.ID)
	return nil
}

func runAdminUpdateBook(cmd *cobra.Command, args []string) error {
	if _, err := ensureAdmin(); err != nil {
		return err
	}

	input := bookInputFromFlags(cmd)
	if err := validate.New().Struct(input); err != nil {
		return &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	material, err := client.UpdateBook(cmd.Context(), args[0], input)
	if err != nil {
		return output.FromBackendError(err)
	}

	newPrinter().Success("Book %q updated", material.Title)
	return nil
}

func runAdminAddMagazine(cmd *cobra.Command, args []string) error {
	if _, err := ensureAdmin(); err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	authors, _ := cmd.Flags().GetStringSlice("author")
	published, _ := cmd.Flags().GetString("published")
	publisher, _ := cmd.Flags().GetString("publisher")
	language, _ := cmd.Flags().GetString("language")
	categories, _ := cmd.Flags().GetStringSlice("category")
	issn, _ := cmd.Flags().GetString("issn")
	volume, _ := cmd.Flags().GetInt("volume")
	number, _ := cmd.Flags().GetInt("number")
	frequency, _ := cmd.Flags().GetString("frequency")

	input := library.MagazineInput{
		Title:           title,
		Authors:         authors,
		PublicationDate: published,
		Publisher:       publisher,
		Language:        language,
		Categories:      categories,
		ISSN:            issn,
		Volume:          volume,
		Number:          number,
		Frequency:       frequency,
	}
	if err := validate.New().Struct(input); err != nil {
		return &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	material, err := client.CreateMagazine(cmd.Context(), input)
	if err != nil {
		return output.FromBackendError(err)
	}

	newPrinter().Success("Magazine %q added with id %s", material.Title, material.ID)
	return nil
}

func runAdminAddDigital(cmd *cobra.Command, args []string) error {
	if _, err := ensureAdmin(); err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	authors, _ := cmd.Flags().GetStringSlice("author")
	published, _ := cmd.Flags().GetString("published")
	publisher, _ := cmd.Flags().GetString("publisher")
	language, _ := cmd.Flags().GetString("language")
	categories, _ := cmd.Flags().GetStringSlice("category")
	url, _ := cmd.Flags().GetString("url")
	format, _ := cmd.Flags().GetString("format")
	size, _ := cmd.Flags().GetFloat64("size")

	input := library.DigitalMaterialInput{
		Title:           title,
		Authors:         authors,
		PublicationDate: published,
		Publisher:       publisher,
		Language:        language,
		Categories:      categories,
		URL:             url,
		Format:          format,
		SizeMB:          size,
	}
	if err := validate.New().Struct(input); err != nil {
		return &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	material, err := client.CreateDigitalMaterial(cmd.Context(), input)
	if err != nil {
		return output.FromBackendError(err)
	}

	newPrinter().Success("Digital material %q added with id %s", material.Title, material.ID)
	return nil
}

func runAdminRmBook(cmd *cobra.Command, args []string) error {
	if _, err := ensureAdmin(); err != nil {
		return err
	}

	if err := client.DeleteBook(cmd.Context(), args[0]); err != nil {
		return output.FromBackendError(err)
	}

	newPrinter().Success("Material %s removed", args[0])
	return nil
}
