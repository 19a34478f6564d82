// Package sharelink serializes a subset of wizard state into a URL-safe
// payload so a plan can be shared statelessly.
package sharelink

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Payload is the shared subset: room type, selected product ids, total
// budget and the selected style ids.
type Payload struct {
	Room     string   `json:"room"`
	Products []string `json:"products"`
	Budget   int      `json:"budget"`
	Styles   []string `json:"styles"`
}

// Encode renders the payload as base64-encoded JSON, ready to embed in a
// query parameter.
func Encode(p Payload) (string, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("sharelink: encode: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode parses an encoded payload. Invalid base64 or JSON comes back as an
// error; callers log it and fall through to the default state rather than
// failing the page.
func Decode(encoded string) (*Payload, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// Some clients URL-safe-encode the parameter.
		raw, err = base64.URLEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("sharelink: invalid base64: %w", err)
		}
	}

	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("sharelink: invalid payload: %w", err)
	}
	return &p, nil
}
