package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON encodes data as indented JSON and writes it with status.
// Responses are marked non-cacheable since they describe live state.
//
// When encoding fails nothing but a 500 reaches the client.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		http.Error(w, "error encoding response", http.StatusInternalServerError)
		return fmt.Errorf("error encoding response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("error writing response: %w", err)
	}

	return nil
}
