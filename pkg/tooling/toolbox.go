// Package tooling provides the functions the model can call and their
// schemas.
package tooling

import (
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go/v3"

	"hotel-concierge/pkg/catalog"
	"hotel-concierge/pkg/store"
)

const (
	ToolSearchHotels        = "search_hotels"
	ToolShowHotelDetails    = "show_hotel_details"
	ToolBookRoom            = "book_room"
	ToolCancelReservation   = "cancel_reservation"
	ToolModifyReservation   = "modify_reservation"
	ToolRecommendActivities = "recommend_activities"
)

// Toolbox binds the tool functions to the catalog and reservation store.
type Toolbox struct {
	Catalog *catalog.Catalog
	Store   *store.Store
}

func NewToolbox(c *catalog.Catalog, s *store.Store) *Toolbox {
	return &Toolbox{Catalog: c, Store: s}
}

// Tools returns the schemas advertised to the model.
// modify_reservation is deliberately left out: date changes are not
// persisted yet, so the model is not offered the tool.
func Tools() []openai.ChatCompletionToolUnionParam {
	return []openai.ChatCompletionToolUnionParam{
		SearchHotelsTool,
		ShowHotelDetailsTool,
		BookRoomTool,
		CancelReservationTool,
		RecommendActivitiesTool,
	}
}

// Dispatch routes a tool call by function name. Every known tool has a
// case; an unrecognized name produces an error tool message instead of
// being silently dropped.
func (t *Toolbox) Dispatch(toolCall openai.ChatCompletionMessageToolCallUnion) openai.ChatCompletionMessageParamUnion {
	switch toolCall.Function.Name {
	case ToolSearchHotels:
		return t.SearchHotels(toolCall)
	case ToolShowHotelDetails:
		return t.ShowHotelDetails(toolCall)
	case ToolBookRoom:
		return t.BookRoom(toolCall)
	case ToolCancelReservation:
		return t.CancelReservation(toolCall)
	case ToolModifyReservation:
		return t.ModifyReservation(toolCall)
	case ToolRecommendActivities:
		return t.RecommendActivities(toolCall)
	default:
		return openai.ToolMessage(fmt.Sprintf(`{"error":"unknown tool %s"}`, toolCall.Function.Name), toolCall.ID)
	}
}

// resultMessage serializes a tool result so the model can read it back.
func resultMessage(result any, toolCallID string) openai.ChatCompletionMessageParamUnion {
	data, err := json.Marshal(result)
	if err != nil {
		return errorMessage(fmt.Sprint("encode tool result: ", err), toolCallID)
	}
	return openai.ToolMessage(string(data), toolCallID)
}

// errorMessage wraps a failure as a structured payload on the tool-result
// channel so the model can narrate it instead of the turn failing.
func errorMessage(message, toolCallID string) openai.ChatCompletionMessageParamUnion {
	data, _ := json.Marshal(map[string]string{"error": message})
	return openai.ToolMessage(string(data), toolCallID)
}
