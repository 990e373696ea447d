// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP endpoints of the ShipFree server:
// the holiday MVP generator and the read-only site configuration API.
package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := encodeJSON(data)
	if err != nil {
		slog.Error("encode response failed", "error", err)
		status = http.StatusInternalServerError
		body = []byte(`{"success":false,"error":"Internal Server Error"}` + "\n")
	}
	writeBody(w, status, body)
}

// writeBody writes an already encoded JSON body.
func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

// encodeJSON encodes v without escaping HTML characters, so generated URLs
// keep their literal ampersands.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// dataResponse is the success envelope of the read endpoints.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// errorResponse carries a single error message.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// errorsResponse carries validation messages.
type errorsResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, dataResponse{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeErrors(w http.ResponseWriter, status int, errs []string) {
	writeJSON(w, status, errorsResponse{Errors: errs})
}
