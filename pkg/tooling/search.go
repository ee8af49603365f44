package tooling

import (
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go/v3"

	"hotel-concierge/pkg/catalog"
)

var SearchHotelsTool = openai.ChatCompletionToolUnionParam{
	OfFunction: &openai.ChatCompletionFunctionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        ToolSearchHotels,
			Description: openai.String("Search for hotels based on criteria."),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"city": map[string]string{
						"type":        "string",
						"description": "City to search (required)",
					},
					"check_in": map[string]string{
						"type":        "string",
						"description": "Check-in date YYYY-MM-DD. Omit if not provided.",
					},
					"check_out": map[string]string{
						"type":        "string",
						"description": "Check-out date YYYY-MM-DD. Omit if not provided.",
					},
					"guests": map[string]string{
						"type":        "integer",
						"description": "Number of guests. Omit if not provided.",
					},
					"budget": map[string]string{
						"type":        "integer",
						"description": "Max budget per night. Omit if not provided.",
					},
					"preferences": map[string]any{
						"type":        "array",
						"items":       map[string]string{"type": "string"},
						"description": "Amenity preferences. Omit if not provided.",
					},
				},
				"required": []string{"city"},
			},
		},
	},
}

type SearchHotelsArguments struct {
	City        string   `json:"city"`
	CheckIn     string   `json:"check_in"`
	CheckOut    string   `json:"check_out"`
	Guests      int      `json:"guests"`
	Budget      float64  `json:"budget"`
	Preferences []string `json:"preferences"`
}

func (t *Toolbox) SearchHotels(toolCall openai.ChatCompletionMessageToolCallUnion) openai.ChatCompletionMessageParamUnion {
	var args SearchHotelsArguments
	if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
		return errorMessage(fmt.Sprint("invalid search_hotels arguments: ", err), toolCall.ID)
	}
	if args.City == "" {
		return errorMessage("parameter city is empty", toolCall.ID)
	}

	// Models occasionally send budget=0 or guests=0 for "not provided";
	// those are dropped rather than treated as constraints.
	params := catalog.SearchParams{
		City:     args.City,
		CheckIn:  args.CheckIn,
		CheckOut: args.CheckOut,
	}
	if args.Guests > 0 {
		params.Guests = args.Guests
	}
	if args.Budget > 0 {
		params.Budget = args.Budget
	}
	if len(args.Preferences) > 0 {
		params.Preferences = args.Preferences
	}

	return resultMessage(t.Catalog.Search(params), toolCall.ID)
}
