package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// SetupSSEHeaders prepares a response for Server-Sent Events delivery.
func SetupSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// SendSSEChunk marshals the payload and writes one data record, flushing
// immediately so fragments reach the client as they arrive.
func SendSSEChunk(w http.ResponseWriter, flusher http.Flusher, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("failed to marshal sse payload: %v", err)
		return
	}
	SendSSERaw(w, flusher, string(data))
}

// SendSSERaw writes one data record with the payload verbatim. Used for the
// terminal sentinel, which is a literal token rather than JSON.
func SendSSERaw(w http.ResponseWriter, flusher http.Flusher, payload string) {
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		log.Printf("failed to write sse record: %v", err)
		return
	}
	flusher.Flush()
}
