package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"

	"github.com/easel-ai/easel/internal/cli"
	"github.com/easel-ai/easel/internal/presentation/tui"
	"github.com/easel-ai/easel/pkg/runner"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive authoring session",
	Long: `Opens a chat session where your prompts drive an agent that builds the
animation project through mutation tools. Requires OPENAI_API_KEY.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadSetup(cmd)
		if err != nil {
			return err
		}
		logger := cli.NewLogger(cfg.Debug)

		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is not set")
		}

		studio, cleanup, err := cli.BuildStudio(cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		projectID, _ := cmd.Flags().GetString("project")
		userID, _ := cmd.Flags().GetString("user")
		if projectID == "" {
			name, _ := cmd.Flags().GetString("name")
			project, err := studio.CreateProject(ctx, name)
			if err != nil {
				return err
			}
			projectID = project.ID
			fmt.Printf(">>> Created project '%s' (%s)\n", name, projectID)
		}

		opts := []runner.Option{
			runner.WithLogger(logger),
			runner.WithRenderer(tui.NewRenderer()),
		}
		if cfg.Model != "" {
			opts = append(opts, runner.WithModel(cfg.Model))
		}

		tui.PrintBanner()
		r := runner.NewRunner(studio, openai.NewClient(apiKey), opts...)
		if err := r.Run(ctx, projectID, userID); err != nil {
			if ctx.Err() != nil {
				fmt.Println("\n>>> Interrupted.")
				return nil
			}
			return err
		}
		fmt.Println(">>> Bye!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().String("project", "", "Id of an existing project to continue")
	chatCmd.Flags().String("name", "Untitled", "Name for a newly created project")
	chatCmd.Flags().String("user", "", "User id reported to access control and metering")
}
