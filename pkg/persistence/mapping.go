package persistence

import (
	"fmt"

	"github.com/openai/openai-go/v3"
)

// NewMessagesFromParams converts openai chat params into the storable
// transcript form.
func NewMessagesFromParams(params []openai.ChatCompletionMessageParamUnion) []Message {
	var messages []Message

	for _, param := range params {
		message := Message{Role: *param.GetRole()}

		if m := param.OfAssistant; m != nil {
			message = Message{Role: "assistant", Content: m.Content.OfString.String(), ToolCalls: newToolCallsFromParams(m.ToolCalls)}
		} else if m := param.OfSystem; m != nil {
			message = Message{Role: "system", Content: m.Content.OfString.String()}
		} else if m := param.OfTool; m != nil {
			message = Message{Role: "tool", Content: m.Content.OfString.String(), ToolCallID: m.ToolCallID}
		} else if m := param.OfUser; m != nil {
			message = Message{Role: "user", Content: m.Content.OfString.String()}
		}

		messages = append(messages, message)
	}

	return messages
}

func newToolCallsFromParams(calls []openai.ChatCompletionMessageToolCallUnionParam) []ToolCall {
	var toolCalls []ToolCall
	for _, call := range calls {
		if call.OfFunction != nil {
			f := call.OfFunction
			toolCalls = append(toolCalls, ToolCall{ID: f.ID, Name: f.Function.Name, Arguments: f.Function.Arguments})
		} else {
			toolCalls = append(toolCalls, ToolCall{ID: fmt.Sprint("ERROR: mapping failed for ", call)})
		}
	}
	return toolCalls
}

// NewParamsFromMessages rebuilds openai chat params from a stored
// transcript. Unknown roles are skipped rather than failing the turn.
func NewParamsFromMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	var params []openai.ChatCompletionMessageParamUnion

	for _, message := range messages {
		var param openai.ChatCompletionMessageParamUnion

		switch message.Role {
		case "assistant":
			param = openai.AssistantMessage(message.Content)
			param.OfAssistant.ToolCalls = newToolCallsFromMessages(message.ToolCalls)
		case "system":
			param = openai.SystemMessage(message.Content)
		case "tool":
			param = openai.ToolMessage(message.Content, message.ToolCallID)
		case "user":
			param = openai.UserMessage(message.Content)
		default:
			continue
		}

		params = append(params, param)
	}

	return params
}

func newToolCallsFromMessages(calls []ToolCall) []openai.ChatCompletionMessageToolCallUnionParam {
	var toolCalls []openai.ChatCompletionMessageToolCallUnionParam
	for _, call := range calls {
		toolCalls = append(toolCalls, openai.ChatCompletionMessageToolCallUnionParam{
			OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
				ID:       call.ID,
				Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{Name: call.Name, Arguments: call.Arguments},
			},
		})
	}
	return toolCalls
}
