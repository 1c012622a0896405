package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/isparth/Distributed-Systems/items-api/internal/types"
)

// maxBodyBytes bounds how much of a request body DecodeItem reads.
const maxBodyBytes = 1 << 20

// DecodeItem decodes an Item from body. Both fields must be present and be
// JSON strings; anything else yields a *types.MalformedError. Unknown fields
// are ignored.
func DecodeItem(body io.Reader) (types.Item, error) {
	var item types.Item
	if body == nil {
		return item, &types.MalformedError{Reason: "request body is empty"}
	}

	var raw map[string]json.RawMessage
	decoder := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return item, &types.MalformedError{Reason: "request body is empty"}
		}
		return item, &types.MalformedError{Reason: "invalid json: " + err.Error()}
	}
	if raw == nil {
		return item, &types.MalformedError{Reason: "request body must be a JSON object"}
	}

	var err error
	if item.Index, err = stringField(raw, "index"); err != nil {
		return types.Item{}, err
	}
	if item.Name, err = stringField(raw, "name"); err != nil {
		return types.Item{}, err
	}
	return item, nil
}

func stringField(raw map[string]json.RawMessage, field string) (string, error) {
	v, ok := raw[field]
	if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		return "", &types.MalformedError{Field: field, Reason: "is required"}
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", &types.MalformedError{Field: field, Reason: "must be a string"}
	}
	return s, nil
}
