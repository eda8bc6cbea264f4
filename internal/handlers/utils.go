package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"research-blender-api/internal/logging"
	"research-blender-api/internal/metrics"
)

// maxRequestBodyBytes caps JSON request bodies.
const maxRequestBodyBytes = 1 << 20

var (
	errTrailingData = errors.New("unexpected data after JSON body")
	errNullBody     = errors.New("request body must be a JSON object, got null")
)

// ErrorResponse is the JSON envelope of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeJSON encodes v as JSON and writes it to the response writer.
// Any encoding or write errors are logged since we typically cannot
// recover from them in an HTTP handler context.
func writeJSON(w io.Writer, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

// writeJSONStatus writes v as JSON with the given status code. v is
// encoded before the header goes out, so a value that cannot be encoded
// yields a 500 envelope instead of an empty success.
func writeJSONStatus(w http.ResponseWriter, statusCode int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
		statusCode = http.StatusInternalServerError
		buf.Reset()
		writeJSON(&buf, ErrorResponse{Success: false, Error: "Internal server error"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Error("failed to write JSON response: %v", err)
	}
}

// writeError writes the error envelope and counts it against endpoint.
func writeError(w http.ResponseWriter, endpoint string, apiErr APIError) {
	metrics.APIErrorsTotal.WithLabelValues(endpoint, strconv.Itoa(apiErr.Status)).Inc()
	writeJSONStatus(w, apiErr.Status, ErrorResponse{Success: false, Error: apiErr.Message})
}

// WriteInternalError writes a bare 500 envelope. It is used by middleware
// that has no endpoint context.
func WriteInternalError(w http.ResponseWriter, message string) {
	writeJSONStatus(w, http.StatusInternalServerError, ErrorResponse{Success: false, Error: message})
}

// decodeJSON reads a size-limited JSON body into v. An empty body leaves v
// untouched. Data after the first value and a literal null are errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return errNullBody
	}
	return json.Unmarshal(raw, v)
}

// NotFound answers unknown routes with the JSON error envelope.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSONStatus(w, http.StatusNotFound, ErrorResponse{Success: false, Error: "Not found"})
}

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSONStatus(w, http.StatusMethodNotAllowed, ErrorResponse{Success: false, Error: "Method not allowed"})
}
