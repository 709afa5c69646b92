package cmd

import (
	"fmt"

	"github.com/abhisek/quizdeck/internal/llm"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show the resolved LLM provider configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := llm.ConfigFromEnv()
		source := "environment"
		if cfg.Validate() != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("No LLM provider configured.")
				fmt.Println("Set QUIZDECK_GEMINI_API_KEY, GEMINI_API_KEY, OPENAI_API_KEY, or ANTHROPIC_API_KEY.")
				return
			}
			cfg = discovered
			source = "discovered API key"
		}

		fmt.Println("Provider:", cfg.Provider)
		switch cfg.Provider {
		case "gemini":
			fmt.Println("Model:   ", cfg.Gemini.Model)
			if len(cfg.Gemini.FallbackModels) > 0 {
				fmt.Println("Fallback:", cfg.Gemini.FallbackModels)
			}
		case "openai":
			fmt.Println("Model:   ", cfg.OpenAI.Model)
			if cfg.OpenAI.BaseURL != "" {
				fmt.Println("Base URL:", cfg.OpenAI.BaseURL)
			}
		case "anthropic":
			fmt.Println("Model:   ", cfg.Anthropic.Model)
		}
		fmt.Println("Source:  ", source)
		fmt.Printf("Retries:  %d (initial wait %s)\n", cfg.Retry.MaxAttempts, cfg.Retry.InitialWait)
	},
}
