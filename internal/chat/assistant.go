package chat

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"

	"github.com/admiralguff/majel/internal/llm"
)

// maxToolRounds bounds the function-calling loop for a single user turn.
const maxToolRounds = 4

// Assistant is one Majel chat session bound to a user's roster.
type Assistant struct {
	session *genai.ChatSession
	tools   *Toolset
	logger  *zap.Logger
}

// NewAssistant starts a chat session with the roster-grounded system prompt
// and the toolset's function declarations.
func NewAssistant(client *llm.GeminiClient, tools *Toolset, logger *zap.Logger) *Assistant {
	roster := RosterCSV(tools.Officers(), tools.Reservations())
	system := BuildSystemPrompt(roster, tools.IntentKeys())
	session := client.StartChat(system, tools.Declarations(), llm.TierFast)

	return &Assistant{
		session: session,
		tools:   tools,
		logger:  logger,
	}
}

// Send submits one user message and drives the function-calling loop until
// the model produces a text answer.
func (a *Assistant) Send(ctx context.Context, userInput string) (string, error) {
	resp, err := a.session.SendMessage(ctx, genai.Text(userInput))
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}

	for round := 0; round < maxToolRounds; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}

		parts := make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			a.logger.Info("executing tool call",
				zap.String("tool", call.Name))
			result := a.tools.Dispatch(call.Name, call.Args)
			parts = append(parts, genai.FunctionResponse{
				Name:     call.Name,
				Response: result,
			})
		}

		resp, err = a.session.SendMessage(ctx, parts...)
		if err != nil {
			return "", fmt.Errorf("failed to send tool results: %w", err)
		}
	}

	return responseText(resp)
}

// Run is the interactive REPL used by the chat CLI command.
func (a *Assistant) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Majel online. Awaiting input. (Type 'exit' to quit)")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nAdmiral > ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" || input == "q" {
			break
		}

		answer, err := a.Send(ctx, input)
		if err != nil {
			fmt.Fprintf(out, "\nError: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "\nMajel > %s\n", answer)
	}

	fmt.Fprintln(out, "\nMajel offline.")
	return scanner.Err()
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	var calls []genai.FunctionCall
	for _, part := range resp.Candidates[0].Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			calls = append(calls, call)
		}
	}
	return calls
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in model response")
	}
	return sb.String(), nil
}
