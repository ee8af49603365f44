package tooling

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
)

var RecommendActivitiesTool = openai.ChatCompletionToolUnionParam{
	OfFunction: &openai.ChatCompletionFunctionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        ToolRecommendActivities,
			Description: openai.String("Get recommendations for activities in a city."),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"city": map[string]string{
						"type": "string",
					},
				},
				"required": []string{"city"},
			},
		},
	},
}

type RecommendActivitiesArguments struct {
	City string `json:"city"`
}

var cityActivities = []struct {
	city       string
	activities []string
}{
	{"marrakech", []string{
		"Visit Jardin Majorelle",
		"Explore the Souks",
		"Dinner at Jemaa el-Fnaa",
		"Relax in a Hammam",
	}},
	{"paris", []string{
		"Visit the Louvre Museum",
		"Climb the Eiffel Tower",
		"Walk along the Seine",
		"Explore Montmartre",
	}},
	{"tokyo", []string{
		"Visit Senso-ji Temple",
		"Cross the Shibuya Crossing",
		"Explore Akihabara Electronics Town",
		"Sushi at Tsukiji Outer Market",
	}},
	{"new york", []string{
		"Walk through Central Park",
		"See a Broadway Show",
		"Visit the Statue of Liberty",
		"Explore Times Square",
	}},
	{"london", []string{
		"Visit the British Museum",
		"See the Tower of London",
		"Walk along the South Bank",
		"Explore Covent Garden",
	}},
}

var genericActivities = []string{"City tour", "Local museum", "Central park", "Shopping district"}

// RecommendActivities is a pure lookup: case-insensitive substring match
// against the known cities, with a generic fallback for everywhere else.
func RecommendActivities(city string) []string {
	lower := strings.ToLower(city)
	for _, entry := range cityActivities {
		if strings.Contains(lower, entry.city) {
			return entry.activities
		}
	}
	return genericActivities
}

func (t *Toolbox) RecommendActivities(toolCall openai.ChatCompletionMessageToolCallUnion) openai.ChatCompletionMessageParamUnion {
	var args RecommendActivitiesArguments
	if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
		return errorMessage(fmt.Sprint("invalid recommend_activities arguments: ", err), toolCall.ID)
	}
	return resultMessage(RecommendActivities(args.City), toolCall.ID)
}
