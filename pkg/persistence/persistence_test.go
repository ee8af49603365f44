package persistence

import (
	"reflect"
	"testing"
)

func sampleTranscript() []Message {
	return []Message{
		{Role: "system", Content: "You are a concierge."},
		{Role: "user", Content: "Find me a hotel in Paris"},
		{Role: "assistant", ToolCalls: []ToolCall{
			{ID: "call_1", Name: "search_hotels", Arguments: `{"city":"Paris"}`},
		}},
		{Role: "tool", ToolCallID: "call_1", Content: `[{"id":"h4"}]`},
		{Role: "assistant", Content: "I found Le Meurice."},
	}
}

func TestTranscriptRoundTrip(t *testing.T) {
	original := sampleTranscript()

	data, err := EncodeTranscript(original)
	if err != nil {
		t.Fatalf("EncodeTranscript: %v", err)
	}

	decoded := DecodeTranscript(data)
	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", original, decoded)
	}
}

func TestDecodeMalformedContext(t *testing.T) {
	for _, blob := range []string{"", "not json", `{"legacy":"dict"}`, "42"} {
		if got := DecodeTranscript([]byte(blob)); got != nil {
			t.Fatalf("DecodeTranscript(%q): expected nil, got %+v", blob, got)
		}
	}
}

func TestParamsMappingRoundTrip(t *testing.T) {
	original := sampleTranscript()

	params := NewParamsFromMessages(original)
	if len(params) != len(original) {
		t.Fatalf("expected %d params, got %d", len(original), len(params))
	}

	back := NewMessagesFromParams(params)
	if !reflect.DeepEqual(original, back) {
		t.Fatalf("mapping round trip mismatch:\n%+v\n%+v", original, back)
	}
}

func TestMappingSkipsUnknownRoles(t *testing.T) {
	messages := []Message{
		{Role: "user", Content: "hello"},
		{Role: "developer", Content: "should vanish"},
	}

	params := NewParamsFromMessages(messages)
	if len(params) != 1 {
		t.Fatalf("expected unknown role to be skipped, got %d params", len(params))
	}
}
