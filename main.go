package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hotel-concierge/pkg/agent"
	"hotel-concierge/pkg/catalog"
	"hotel-concierge/pkg/config"
	"hotel-concierge/pkg/store"
	"hotel-concierge/pkg/tooling"
)

const fallbackText = "Sorry, something went wrong. Please try again."

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	root := &cobra.Command{
		Use:          "hotel-concierge",
		Short:        "LLM-backed hotel booking assistant",
		SilenceUsage: true,
	}
	root.AddCommand(newChatCmd(cfg), newSendCmd(cfg), newHotelsCmd(cfg))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogFile != "" {
		return catalog.LoadFile(cfg.CatalogFile)
	}
	return catalog.Default(), nil
}

func newConcierge(cfg *config.Config) (*agent.Concierge, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	var options []option.RequestOption
	if cfg.BaseURL != "" {
		options = append(options, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		options = append(options, option.WithAPIKey(cfg.APIKey))
	}
	client := openai.NewClient(options...)

	systemPrompt := ""
	if cfg.SystemPromptFile != "" {
		data, err := os.ReadFile(cfg.SystemPromptFile)
		if err != nil {
			return nil, err
		}
		systemPrompt = string(data)
	}

	toolbox := tooling.NewToolbox(cat, st)
	return agent.New(client, cfg.ModelName, st, toolbox, systemPrompt), nil
}

// newSendCmd runs a single turn and prints the JSON reply to stdout, for
// callers that drive one request per invocation.
func newSendCmd(cfg *config.Config) *cobra.Command {
	var sessionID, message string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Process one user message for a session and print the JSON reply",
		RunE: func(cmd *cobra.Command, args []string) error {
			concierge, err := newConcierge(cfg)
			if err != nil {
				return err
			}

			reply, err := concierge.ProcessTurn(cmd.Context(), sessionID, message)
			if err != nil {
				// Still emit valid JSON so the caller has something to show.
				log.Error().Err(err).Str("session_id", sessionID).Msg("turn failed")
				reply = agent.Reply{Text: fallbackText}
			}

			return json.NewEncoder(os.Stdout).Encode(reply)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Session id for the user")
	cmd.Flags().StringVar(&message, "message", "", "User message")
	_ = cmd.MarkFlagRequired("session")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

// newHotelsCmd prints the full catalog as a JSON array for external
// display.
func newHotelsCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "hotels",
		Short: "Print the hotel catalog as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(cat.All())
		},
	}
}

func newChatCmd(cfg *config.Config) *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive concierge session in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			concierge, err := newConcierge(cfg)
			if err != nil {
				return err
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			t := term.NewTerminal(os.Stdin, "> ")
			fmt.Fprintln(t, "------------------------------------------------------------")
			fmt.Fprintln(t, "Hello, I'm your AI hotel concierge. Where would you like to stay and for which dates?")
			fmt.Fprintln(t, "(Type 'quit' to exit)")
			fmt.Fprintln(t, "------------------------------------------------------------")

			for {
				prompt, err := readLine(t)
				if err != nil {
					if err != io.EOF {
						fmt.Fprintln(t, "Fatal:", err)
					}
					return nil
				}

				if prompt == "" {
					continue
				}
				if prompt == "quit" || prompt == "exit" {
					return nil
				}

				runTurn(cmd.Context(), t, concierge, sessionID, prompt)
			}
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "Resume an existing session id (default: new random id)")

	return cmd
}

func readLine(t *term.Terminal) (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}

	if width, height, err := term.GetSize(fd); err == nil {
		t.SetSize(width, height)
	}

	line, err := t.ReadLine()
	restoreErr := term.Restore(fd, oldState)

	if err != nil {
		return "", err
	}
	if restoreErr != nil {
		return "", restoreErr
	}
	return line, nil
}

func runTurn(ctx context.Context, w io.Writer, concierge *agent.Concierge, sessionID, prompt string) {
	reply, err := concierge.ProcessTurn(ctx, sessionID, prompt)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("turn failed")
		reply = agent.Reply{Text: fallbackText}
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Concierge:", reply.Text)
	for key, value := range reply.UIAction {
		fmt.Fprintf(w, "  [ui] %s: %s\n", key, value)
	}
	fmt.Fprintln(w, "")
}
