// ABOUTME: CLI command for a one-shot follow-up question
// ABOUTME: Optionally loads a topic's stored content as chat context
package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/harper/momprep/internal/core"
)

var askTopic string

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a follow-up question",
		Long: `Ask the chat model a question.

With --topic the topic's stored content is sent as context; without it
the model is told that no topic is loaded.

Examples:
  momprep ask "What is idempotency?"
  momprep ask --topic Sagas "How do compensating actions work?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringVarP(&askTopic, "topic", "t", "", "Topic whose stored content is used as context")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	session := core.NewSession()

	if askTopic != "" {
		item, err := a.coach.Find(ctx, askTopic)
		if err != nil {
			return err
		}
		if _, _, err := a.coach.Content(ctx, session, item, item.Difficulty, false); err != nil {
			if !isNotGenerated(err) {
				return err
			}
			log.Warn().Str("topic", item.Topic).Msg("topic has no stored content; asking without context")
		}
	}

	question := strings.Join(args, " ")
	reply, err := a.coach.Ask(ctx, session, question)
	if err != nil {
		return fmt.Errorf("asking (you can retry): %w", err)
	}

	if jsonOutput() {
		topic, _ := session.CurrentContent()
		return printJSON(out, map[string]string{"question": question, "topic": topic, "answer": reply})
	}

	fmt.Fprint(out, renderMarkdown(out, reply))
	return nil
}
