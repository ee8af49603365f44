package tooling

import (
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go/v3"
)

var ShowHotelDetailsTool = openai.ChatCompletionToolUnionParam{
	OfFunction: &openai.ChatCompletionFunctionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        ToolShowHotelDetails,
			Description: openai.String("Get detailed information about a specific hotel."),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"hotel_id": map[string]string{
						"type": "string",
					},
				},
				"required": []string{"hotel_id"},
			},
		},
	},
}

type ShowHotelDetailsArguments struct {
	HotelID string `json:"hotel_id"`
}

func (t *Toolbox) ShowHotelDetails(toolCall openai.ChatCompletionMessageToolCallUnion) openai.ChatCompletionMessageParamUnion {
	var args ShowHotelDetailsArguments
	if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
		return errorMessage(fmt.Sprint("invalid show_hotel_details arguments: ", err), toolCall.ID)
	}

	hotel, ok := t.Catalog.Details(args.HotelID)
	if !ok {
		return errorMessage("Hotel not found", toolCall.ID)
	}
	return resultMessage(hotel, toolCall.ID)
}
