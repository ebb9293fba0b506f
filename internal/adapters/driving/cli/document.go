package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	Long:  `List all documents, most recently updated first.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a document",
	Args:  cobra.NoArgs,
	RunE:  runNew,
}

var showCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Print document content",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var renameCmd = &cobra.Command{
	Use:   "rename [doc-id] [title]",
	Short: "Rename a document",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var exportCmd = &cobra.Command{
	Use:   "export [doc-id]",
	Short: "Export a document to a markdown file",
	Long:  `Writes the document's content to a file named after its title. With no argument, exports the last opened document.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(exportCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if repositoryService == nil {
		return errors.New("repository service not configured")
	}

	ctx := context.Background()

	docs, err := repositoryService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("No documents.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title:   %s\n", docs[i].Title)
		cmd.Printf("    Updated: %s\n", docs[i].UpdatedAt.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runNew(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()

	if err := sessionService.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	doc, err := sessionService.CreateDocument(ctx)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	cmd.Printf("Created document %s\n", doc.ID)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	if repositoryService == nil {
		return errors.New("repository service not configured")
	}

	ctx := context.Background()

	doc, err := repositoryService.GetOne(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Println(doc.Content)
	return nil
}

func runRename(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()

	if err := sessionService.RenameDocument(ctx, args[0], args[1]); err != nil {
		return fmt.Errorf("failed to rename document: %w", err)
	}

	cmd.Printf("Renamed document %s to %q\n", args[0], args[1])
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	ctx := context.Background()

	if err := sessionService.DeleteDocument(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	cmd.Printf("Deleted document %s\n", args[0])
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	if sessionService == nil || actionService == nil {
		return errors.New("services not configured")
	}

	ctx := context.Background()

	if err := sessionService.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	if len(args) == 1 {
		if err := sessionService.SelectDocument(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to select document: %w", err)
		}
	}

	path, err := actionService.ExportCurrent(ctx)
	if err != nil {
		return fmt.Errorf("failed to export document: %w", err)
	}

	cmd.Printf("Exported to %s\n", path)
	return nil
}
