package tooling

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/openai/openai-go/v3"

	"hotel-concierge/pkg/store"
)

var BookRoomTool = openai.ChatCompletionToolUnionParam{
	OfFunction: &openai.ChatCompletionFunctionToolParam{
		Function: openai.FunctionDefinitionParam{
			Name:        ToolBookRoom,
			Description: openai.String("Book a room at a hotel."),
			Parameters: openai.FunctionParameters{
				"type": "object",
				"properties": map[string]any{
					"hotel_id":      map[string]string{"type": "string"},
					"room_type":     map[string]string{"type": "string"},
					"customer_name": map[string]string{"type": "string"},
					"check_in":      map[string]string{"type": "string"},
					"check_out":     map[string]string{"type": "string"},
					"email":         map[string]string{"type": "string"},
					"phone":         map[string]string{"type": "string"},
				},
				"required": []string{"hotel_id", "room_type", "customer_name", "check_in", "check_out"},
			},
		},
	},
}

type BookRoomArguments struct {
	HotelID      string `json:"hotel_id"`
	RoomType     string `json:"room_type"`
	CustomerName string `json:"customer_name"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
	// Accepted from the model but not stored; the reservation schema has
	// no contact columns.
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BookRoomResult struct {
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

func (t *Toolbox) BookRoom(toolCall openai.ChatCompletionMessageToolCallUnion) openai.ChatCompletionMessageParamUnion {
	var args BookRoomArguments
	if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
		return errorMessage(fmt.Sprint("invalid book_room arguments: ", err), toolCall.ID)
	}

	available, err := t.Store.Available(args.HotelID, args.RoomType, args.CheckIn, args.CheckOut)
	if err != nil {
		return errorMessage(fmt.Sprint("availability check failed: ", err), toolCall.ID)
	}
	if !available {
		return errorMessage("Room is defined as unavailable for these dates.", toolCall.ID)
	}

	reservation := store.Reservation{
		ReservationID: newReservationID(),
		HotelID:       args.HotelID,
		RoomType:      args.RoomType,
		CustomerName:  args.CustomerName,
		CheckIn:       args.CheckIn,
		CheckOut:      args.CheckOut,
		Status:        store.StatusConfirmed,
	}
	if err := t.Store.CreateReservation(&reservation); err != nil {
		return errorMessage(fmt.Sprint("booking failed: ", err), toolCall.ID)
	}

	return resultMessage(BookRoomResult{
		ReservationID: reservation.ReservationID,
		Status:        store.StatusConfirmed,
		Message:       "Booking successful!",
	}, toolCall.ID)
}

// newReservationID builds a short human-quotable id. The 4-digit space is
// not collision free; a duplicate fails the insert on the primary key.
func newReservationID() string {
	return fmt.Sprintf("RES-%d", 1000+rand.IntN(9000))
}
