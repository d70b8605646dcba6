package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/biblio-project/bibctl/internal/library"
	"github.com/biblio-project/bibctl/internal/output"
	"github.com/biblio-project/bibctl/internal/validate"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Read and write material reviews",
}

var reviewsListCmd = &cobra.Command{
	Use:   "list [material-id]",
	Short: "List reviews",
	Long: `List the reviews of a material, or every review when no
material id is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReviewsList,
}

var reviewsAddCmd = &cobra.Command{
	Use:   "add <material-id>",
	Short: "Review a material",
	Long: `Add a review with a 1 to 5 rating and a comment.

Example:
  bibctl reviews add 42 --rating 5 --comment "Imprescindible."`,
	Args: cobra.ExactArgs(1),
	RunE: runReviewsAdd,
}

var reviewsEditCmd = &cobra.Command{
	Use:   "edit <review-id>",
	Short: "Update one of your reviews",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewsEdit,
}

var reviewsRmCmd = &cobra.Command{
	Use:   "rm <review-id>",
	Short: "Delete one of your reviews",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewsRm,
}

func init() {
	rootCmd.AddCommand(reviewsCmd)
	reviewsCmd.AddCommand(reviewsListCmd)
	reviewsCmd.AddCommand(reviewsAddCmd)
	reviewsCmd.AddCommand(reviewsEditCmd)
	reviewsCmd.AddCommand(reviewsRmCmd)

	reviewsListCmd.Flags().Bool("json", false, "output as JSON")

	reviewsAddCmd.Flags().Int("rating", 0, "rating from 1 to 5")
	reviewsAddCmd.Flags().String("comment", "", "review text")
	_ = reviewsAddCmd.MarkFlagRequired("rating")
	_ = reviewsAddCmd.MarkFlagRequired("comment")

	reviewsEditCmd.Flags().Int("rating", 0, "rating from 1 to 5")
	reviewsEditCmd.Flags().String("comment", "", "review text")
	reviewsEditCmd.Flags().String("material", "", "material the review belongs to")
	_ = reviewsEditCmd.MarkFlagRequired("rating")
	_ = reviewsEditCmd.MarkFlagRequired("comment")
	_ = reviewsEditCmd.MarkFlagRequired("material")
}

func runReviewsList(cmd *cobra.Command, args []string) error {
	if _, err := ensureAuthenticated(); err != nil {
		return err
	}

	var reviews []library.Review
	var err error
	if len(args) == 1 {
		reviews, err = client.ReviewsByMaterial(cmd.Context(), args[0])
	} else {
		reviews, err = client.Reviews(cmd.Context())
	}
	if err != nil {
		return output.FromBackendError(err)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(cmd, reviews)
	}

	printer := newPrinter()
	if len(reviews) == 0 {
		printer.Info("No reviews yet")
		return nil
	}

	table := output.NewTableWithWriter(cmd.OutOrStdout(),
		[]string{"ID", "RATING", "AUTHOR", "COMMENT", "DATE"})
	for _, r := range reviews {
		author := ""
		if r.Author != nil {
			author = r.Author.GivenName + " " + r.Author.FamilyName
		}
		table.AddRow([]string{
			r.ID,
			strings.Repeat("★", r.Rating),
			author,
			r.Comment,
			r.CreatedAt,
		})
	}
	table.Render()
	return nil
}

func runReviewsAdd(cmd *cobra.Command, args []string) error {
	identity, err := ensureAuthenticated()
	if err != nil {
		return err
	}

	rating, _ := cmd.Flags().GetInt("rating")
	comment, _ := cmd.Flags().GetString("comment")

	input := library.ReviewInput{
		AuthorID:   identity.ID,
		MaterialID: args[0],
		Rating:     rating,
		Comment:    comment,
	}
	if err := validate.New().Struct(input); err != nil {
		return &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	review, err := client.CreateReview(cmd.Context(), input)
	if err != nil {
		return output.FromBackendError(err)
	}

	printer := newPrinter()
	printer.Success("Review %s added (%s)", review.ID, strings.Repeat("★", review.Rating))
	printer.PrintHints("reviews add")
	return nil
}

func runReviewsEdit(cmd *cobra.Command, args []string) error {
	identity, err := ensureAuthenticated()
	if err != nil {
		return err
	}

	rating, _ := cmd.Flags().GetInt("rating")
	comment, _ := cmd.Flags().GetString("comment")
	materialID, _ := cmd.Flags().GetString("material")

	input := library.ReviewInput{
		AuthorID:   identity.ID,
		MaterialID: materialID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := validate.New().Struct(input); err != nil {
		return &output.CLIError{
			Summary:  err.Error(),
			ExitCode: output.ExitUsageError,
		}
	}

	review, err := client.UpdateReview(cmd.Context(), args[0], input)
	if err != nil {
		return output.FromBackendError(err)
	}

	newPrinter().Success("Review %s updated", review.ID)
	return nil
}

func runReviewsRm(cmd *cobra.Command, args []string) error {
	if _, err := ensureAuthenticated(); err != nil {
		return err
	}

	if err := client.DeleteReview(cmd.Context(), args[0]); err != nil {
		return output.FromBackendError(err)
	}

	newPrinter().Success("Review %s deleted", args[0])
	return nil
}
