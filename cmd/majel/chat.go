package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/admiralguff/majel/internal/bundle"
	"github.com/admiralguff/majel/internal/chat"
	"github.com/admiralguff/majel/internal/llm"
	"github.com/admiralguff/majel/internal/roster"
)

var (
	chatBundle string
	chatRoster string
	chatConfig string
	chatModel  string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the Majel fleet assistant",
	Long:  `Start an interactive chat session grounded in your roster, with crew recommendation tools available to the assistant.`,
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatBundle, "bundle", "", "Path to the effect catalog bundle JSON")
	chatCmd.Flags().StringVar(&chatRoster, "roster", "", "Path to the offline roster JSON")
	chatCmd.Flags().StringVar(&chatConfig, "config", "", "Path to a JSON config file")
	chatCmd.Flags().StringVar(&chatModel, "model", "", "Override the chat model")
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(chatConfig)
	if err != nil {
		return err
	}
	if chatBundle != "" {
		cfg.Bundle = chatBundle
	}
	if chatRoster != "" {
		cfg.Roster = chatRoster
	}
	if chatModel != "" {
		cfg.Model = chatModel
	}
	if cfg.Bundle == "" || cfg.Roster == "" {
		return fmt.Errorf("both a bundle and a roster path are required")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	b, err := bundle.Load(cfg.Bundle)
	if err != nil {
		return fmt.Errorf("failed to load bundle: %w", err)
	}
	r, err := roster.Load(cfg.Roster)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	ctx := context.Background()

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig.FastModel = cfg.Model
	}
	client, err := llm.NewGeminiClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	tools := chat.NewToolset(b.NewEngine(), r.Officers, r.Reservations, b.IntentKeys())
	assistant := chat.NewAssistant(client, tools, logger)

	return assistant.Run(ctx, os.Stdin, os.Stdout)
}
