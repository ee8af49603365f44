package tooling

import (
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go/v3"
)

// ModifyReservationTool exists but is not advertised to the model (see
// Tools): the operation only verifies that the reservation exists and
// acknowledges the new dates without persisting them.
// TODO: persist the new dates and re-run the availability check, then add
// the schema to Tools.
var ModifyReservationTool = openai.ChatCompletionToolUnionParam{
	OfFunction: &openai.ChatCompletionFunctionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        ToolModifyReservation,
			Description: openai.String("Change the dates of an existing reservation."),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"reservation_id": map[string]string{"type": "string"},
					"new_check_in":   map[string]string{"type": "string"},
					"new_check_out":  map[string]string{"type": "string"},
				},
				"required": []string{"reservation_id", "new_check_in", "new_check_out"},
			},
		},
	},
}

type ModifyReservationArguments struct {
	ReservationID string `json:"reservation_id"`
	NewCheckIn    string `json:"new_check_in"`
	NewCheckOut   string `json:"new_check_out"`
}

func (t *Toolbox) ModifyReservation(toolCall openai.ChatCompletionMessageToolCallUnion) openai.ChatCompletionMessageParamUnion {
	var args ModifyReservationArguments
	if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
		return errorMessage(fmt.Sprint("invalid modify_reservation arguments: ", err), toolCall.ID)
	}

	reservation, err := t.Store.FindReservation(args.ReservationID)
	if err != nil {
		return errorMessage(fmt.Sprint("lookup failed: ", err), toolCall.ID)
	}
	if reservation == nil {
		return errorMessage("Reservation not found", toolCall.ID)
	}

	return resultMessage(StatusResult{Status: "success", Message: "Dates updated"}, toolCall.ID)
}
