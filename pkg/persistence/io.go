package persistence

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// EncodeTranscript serializes a transcript for the session context blob.
func EncodeTranscript(messages []Message) ([]byte, error) {
	data, err := json.Marshal(messages)
	if err != nil {
		return nil, errors.Wrap(err, "encode transcript")
	}
	return data, nil
}

// DecodeTranscript parses a stored context blob. Anything that is not a
// recognizable message list (legacy formats, corruption) yields nil, which
// callers treat as an empty history rather than a failed turn.
func DecodeTranscript(data []byte) []Message {
	if len(data) == 0 {
		return nil
	}
	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil
	}
	return messages
}
