package sharelink

import (
	"reflect"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
	}{
		{
			name: "full payload",
			payload: Payload{
				Room:     "living-room",
				Products: []string{"sofa-klippan", "storage-billy", "lamp-not-floor"},
				Budget:   15000,
				Styles:   []string{"scandinavian", "cozy"},
			},
		},
		{
			name:    "empty payload",
			payload: Payload{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encode(tt.payload)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}

			decoded, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if !reflect.DeepEqual(*decoded, tt.payload) {
				t.Errorf("round trip = %+v, want %+v", *decoded, tt.payload)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "not base64", encoded: "%%%not-base64%%%"},
		{name: "base64 of non-json", encoded: "bm90IGpzb24="},
		{name: "empty string", encoded: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.encoded); err == nil {
				t.Error("Decode() should fail on malformed input")
			}
		})
	}
}
