// Package agent runs one conversation turn against the model: load the
// session transcript, let the model call tools, and hand back the final
// text plus UI hints.
package agent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"hotel-concierge/pkg/persistence"
	"hotel-concierge/pkg/store"
	"hotel-concierge/pkg/tooling"
)

// Reply is what the caller shows the user. UIAction is a side channel of
// presentation hints (filter_city, show_hotel_details); it is never sent
// to the model.
type Reply struct {
	Text     string            `json:"text"`
	UIAction map[string]string `json:"ui_action,omitempty"`
}

type Concierge struct {
	client       openai.Client
	modelName    string
	store        *store.Store
	toolbox      *tooling.Toolbox
	systemPrompt string
}

func New(client openai.Client, modelName string, st *store.Store, toolbox *tooling.Toolbox, systemPrompt string) *Concierge {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	return &Concierge{
		client:       client,
		modelName:    modelName,
		store:        st,
		toolbox:      toolbox,
		systemPrompt: systemPrompt,
	}
}

// Provider error text may quote the failed arguments either verbatim or
// JSON-escaped, so the quotes around city may carry backslashes.
var cityArgPattern = regexp.MustCompile(`\\?"city\\?":\s*\\?"([^"\\]+)`)

// ProcessTurn handles one user message for the given session. Tool calls
// are dispatched sequentially in the order the model requested them. The
// only error that propagates is a first-round provider failure that is
// not a tool-argument failure; everything else degrades to a valid reply.
func (c *Concierge) ProcessTurn(ctx context.Context, sessionID, userText string) (Reply, error) {
	messages := c.loadTranscript(sessionID)
	messages = append(messages, openai.UserMessage(userText))

	params := openai.ChatCompletionNewParams{
		Model:      c.modelName,
		Messages:   messages,
		Tools:      tooling.Tools(),
		ToolChoice: openai.ChatCompletionToolChoiceOptionUnionParam{OfAuto: openai.String("auto")},
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		if !isToolUseFailure(err) {
			return Reply{}, err
		}
		// The provider failed while generating tool arguments. Salvage a
		// city hint from the raw error text and ask a clarifying question
		// instead of surfacing the failure.
		reply := Reply{Text: clarifyingText(err.Error())}
		if city := extractCity(err.Error()); city != "" {
			reply.UIAction = map[string]string{"filter_city": city}
		}
		c.saveTranscript(sessionID, params.Messages)
		return reply, nil
	}

	if len(completion.Choices) == 0 {
		return Reply{}, errors.New("no response from model")
	}

	message := completion.Choices[0].Message
	params.Messages = append(params.Messages, message.ToParam())

	if len(message.ToolCalls) == 0 {
		c.saveTranscript(sessionID, params.Messages)
		return Reply{Text: message.Content}, nil
	}

	uiAction := map[string]string{}
	for _, toolCall := range message.ToolCalls {
		params.Messages = append(params.Messages, c.toolbox.Dispatch(toolCall))

		switch toolCall.Function.Name {
		case tooling.ToolSearchHotels:
			uiAction["filter_city"] = gjson.Get(toolCall.Function.Arguments, "city").String()
		case tooling.ToolShowHotelDetails:
			uiAction["show_hotel_details"] = gjson.Get(toolCall.Function.Arguments, "hotel_id").String()
		}
	}

	params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{OfAuto: openai.String("none")}
	final, err := c.client.Chat.Completions.New(ctx, params)
	if err == nil && len(final.Choices) == 0 {
		err = errors.New("no response from model")
	}
	if err != nil {
		c.saveTranscript(sessionID, params.Messages)
		if isToolUseFailure(err) {
			return Reply{Text: "I found some results but had trouble summarizing them. Here are the hotels I found: " + fmt.Sprintf("%q", uiAction["filter_city"])}, nil
		}
		log.Error().Err(err).Str("session_id", sessionID).Msg("final completion failed")
		return Reply{Text: "I encountered an error generating the final response. Please try again."}, nil
	}

	params.Messages = append(params.Messages, final.Choices[0].Message.ToParam())
	c.saveTranscript(sessionID, params.Messages)

	return Reply{Text: final.Choices[0].Message.Content, UIAction: uiAction}, nil
}

// loadTranscript returns the replayable message history for the session.
// A missing session or an unreadable context blob yields a fresh
// transcript seeded with the system prompt.
func (c *Concierge) loadTranscript(sessionID string) []openai.ChatCompletionMessageParamUnion {
	sess, err := c.store.GetSession(sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("loading session failed, starting fresh")
		sess = nil
	}

	if sess != nil {
		if history := persistence.DecodeTranscript(sess.Context); len(history) > 0 {
			return persistence.NewParamsFromMessages(history)
		}
	}

	return []openai.ChatCompletionMessageParamUnion{openai.SystemMessage(c.systemPrompt)}
}

// saveTranscript upserts the full transcript for the session. Persistence
// problems are logged rather than failing the turn; the user still gets
// their reply.
func (c *Concierge) saveTranscript(sessionID string, messages []openai.ChatCompletionMessageParamUnion) {
	data, err := persistence.EncodeTranscript(persistence.NewMessagesFromParams(messages))
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("encoding transcript failed")
		return
	}
	if err := c.store.SaveSession(sessionID, data, store.StateRunning); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("saving session failed")
	}
}

func isToolUseFailure(err error) bool {
	return strings.Contains(err.Error(), "tool_use_failed")
}

// extractCity pulls a city value out of raw provider error text, which
// often echoes the failed tool arguments.
func extractCity(errText string) string {
	if match := cityArgPattern.FindStringSubmatch(errText); match != nil {
		return match[1]
	}
	return ""
}

func clarifyingText(errText string) string {
	cityHint := ""
	if city := extractCity(errText); city != "" {
		cityHint = " in " + city
	}
	return fmt.Sprintf("I'd love to help you find hotels%s! To show you the best options, I'll need your travel dates and number of guests. When are you planning to visit?", cityHint)
}
