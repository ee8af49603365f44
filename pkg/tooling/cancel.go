package tooling

import (
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go/v3"
)

var CancelReservationTool = openai.ChatCompletionToolUnionParam{
	OfFunction: &openai.ChatCompletionFunctionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        ToolCancelReservation,
			Description: openai.String("Cancel an existing reservation."),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"reservation_id": map[string]string{
						"type": "string",
					},
				},
				"required": []string{"reservation_id"},
			},
		},
	},
}

type CancelReservationArguments struct {
	ReservationID string `json:"reservation_id"`
}

type StatusResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (t *Toolbox) CancelReservation(toolCall openai.ChatCompletionMessageToolCallUnion) openai.ChatCompletionMessageParamUnion {
	var args CancelReservationArguments
	if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
		return errorMessage(fmt.Sprint("invalid cancel_reservation arguments: ", err), toolCall.ID)
	}

	reservation, err := t.Store.FindReservation(args.ReservationID)
	if err != nil {
		return errorMessage(fmt.Sprint("lookup failed: ", err), toolCall.ID)
	}
	if reservation == nil {
		return errorMessage("Reservation not found", toolCall.ID)
	}

	// Cancelling twice is fine; the second cancel also reports success.
	if err := t.Store.CancelReservation(args.ReservationID); err != nil {
		return errorMessage(fmt.Sprint("cancel failed: ", err), toolCall.ID)
	}

	return resultMessage(StatusResult{Status: "success", Message: "Reservation cancelled"}, toolCall.ID)
}
