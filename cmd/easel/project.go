package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/easel-ai/easel"
	"github.com/easel-ai/easel/internal/cli"
	"github.com/easel-ai/easel/internal/presentation/graph"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage stored projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new empty project",
	Args:  cobra.ExactArgs(1),
	RunE: withStudio(func(ctx context.Context, studio *easel.Studio, args []string) error {
		project, err := studio.CreateProject(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Println(project.ID)
		return nil
	}),
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored project ids",
	RunE: withStudio(func(ctx context.Context, studio *easel.Studio, args []string) error {
		ids, err := studio.Projects(ctx)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	}),
}

var projectShowCmd = &cobra.Command{
	Use:   "show <project-id>",
	Short: "Print a project document as JSON, or its layer tree as Mermaid",
	Args:  cobra.ExactArgs(1),
	RunE: withStudio(func(ctx context.Context, studio *easel.Studio, args []string) error {
		project, err := studio.Project(ctx, args[0])
		if err != nil {
			return err
		}
		if showMermaid {
			fmt.Print(graph.GenerateMermaid(project))
			return nil
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(project)
	}),
}

var showMermaid bool

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a stored project",
	Args:  cobra.ExactArgs(1),
	RunE: withStudio(func(ctx context.Context, studio *easel.Studio, args []string) error {
		return studio.DeleteProject(ctx, args[0])
	}),
}

// withStudio wraps a project subcommand with config, studio and cleanup
// plumbing.
func withStudio(fn func(ctx context.Context, studio *easel.Studio, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSetup(cmd)
		if err != nil {
			return err
		}
		logger := cli.NewLogger(cfg.Debug)

		studio, cleanup, err := cli.BuildStudio(cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		return fn(cmd.Context(), studio, args)
	}
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectCreateCmd, projectListCmd, projectShowCmd, projectDeleteCmd)
	projectShowCmd.Flags().BoolVar(&showMermaid, "mermaid", false, "Render the layer tree as a Mermaid graph")
}
