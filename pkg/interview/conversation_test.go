package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// sseServer streams the given raw writes, flushing after each one.
func sseServer(t *testing.T, writes ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			t.Fatal("test server does not support flushing")
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		for _, chunk := range writes {
			fmt.Fprint(w, chunk)
			flusher.Flush()
		}
	}))
}

func fragmentRecord(text string) string {
	payload, _ := json.Marshal(map[string]string{"text": text})
	return "data: " + string(payload) + "\n\n"
}

func TestSendAccumulatesFragmentsMonotonically(t *testing.T) {
	srv := sseServer(t,
		fragmentRecord("Hel"),
		fragmentRecord("lo"),
		fragmentRecord(" there"),
		"data: [DONE]\n\n",
	)
	defer srv.Close()

	conv := NewConversation(srv.URL, "secure-adopters", "co-pilot-commons")

	var snapshots []string
	if err := conv.Send(context.Background(), "how is your rent?", func(assistant string) {
		snapshots = append(snapshots, assistant)
	}); err != nil {
		t.Fatalf("Send err: %v", err)
	}

	want := []string{"Hel", "Hello", "Hello there"}
	if len(snapshots) != len(want) {
		t.Fatalf("got snapshots %v", snapshots)
	}
	for i, snap := range snapshots {
		if snap != want[i] {
			t.Fatalf("snapshot %d is %q, want %q", i, snap, want[i])
		}
		if i > 0 && len(snap) < len(snapshots[i-1]) {
			t.Fatalf("accumulation regressed at %d: %v", i, snapshots)
		}
	}

	messages := conv.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != "user" || messages[0].Content != "how is your rent?" {
		t.Fatalf("unexpected user turn %+v", messages[0])
	}
	if messages[1].Role != "assistant" || messages[1].Content != "Hello there" {
		t.Fatalf("unexpected assistant turn %+v", messages[1])
	}
	if conv.State() != StateIdle {
		t.Fatalf("expected idle state, got %v", conv.State())
	}
}

func TestSendBuffersPartialRecordsAcrossReads(t *testing.T) {
	// The fragment record is split mid-JSON across two writes; the client
	// must stitch them back together rather than drop either half.
	srv := sseServer(t,
		`data: {"te`,
		"xt\":\"whole\"}\n\n",
		"data: [DONE]\n\n",
	)
	defer srv.Close()

	conv := NewConversation(srv.URL, "disconnected", "drift-economy")
	if err := conv.Send(context.Background(), "hi", nil); err != nil {
		t.Fatalf("Send err: %v", err)
	}

	messages := conv.Messages()
	if messages[1].Content != "whole" {
		t.Fatalf("expected stitched fragment, got %q", messages[1].Content)
	}
}

func TestSendSkipsMalformedFragments(t *testing.T) {
	srv := sseServer(t,
		"data: {not json}\n\n",
		fragmentRecord("fine"),
		"data: [DONE]\n\n",
	)
	defer srv.Close()

	conv := NewConversation(srv.URL, "secure-adopters", "diy-advantage")
	if err := conv.Send(context.Background(), "hi", nil); err != nil {
		t.Fatalf("Send err: %v", err)
	}

	if got := conv.Messages()[1].Content; got != "fine" {
		t.Fatalf("expected malformed fragment to be skipped, got %q", got)
	}
}

func TestSendWithoutSentinelIsIncompleteTurn(t *testing.T) {
	srv := sseServer(t, fragmentRecord("partial"))
	defer srv.Close()

	conv := NewConversation(srv.URL, "resilient-outsiders", "the-great-refusal")
	err := conv.Send(context.Background(), "hi", nil)
	if err == nil {
		t.Fatal("expected error for stream without sentinel")
	}

	if conv.State() != StateErrored {
		t.Fatalf("expected errored state, got %v", conv.State())
	}
	messages := conv.Messages()
	if messages[1].Content != FallbackMessage {
		t.Fatalf("expected fallback message, got %q", messages[1].Content)
	}
	// The user's turn survives so they can retry.
	if messages[0].Role != "user" {
		t.Fatalf("expected user turn to remain, got %+v", messages[0])
	}
}

func TestSendValidationRejections(t *testing.T) {
	srv := sseServer(t, "data: [DONE]\n\n")
	defer srv.Close()

	conv := NewConversation(srv.URL, "secure-adopters", "co-pilot-commons")

	if err := conv.Send(context.Background(), "   ", nil); err != ErrEmptyInput {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestSendRejectedByServerProducesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"Invalid population or scenario ID"}`)
	}))
	defer srv.Close()

	conv := NewConversation(srv.URL, "ghost-segment", "co-pilot-commons")
	err := conv.Send(context.Background(), "hi", nil)
	if err == nil || !strings.Contains(err.Error(), "Invalid population or scenario ID") {
		t.Fatalf("expected server rejection error, got %v", err)
	}
	if conv.State() != StateErrored {
		t.Fatalf("expected errored state, got %v", conv.State())
	}
}

func TestExchangeCap(t *testing.T) {
	srv := sseServer(t, fragmentRecord("ok"), "data: [DONE]\n\n")
	defer srv.Close()

	conv := NewConversation(srv.URL, "moderately-insecure", "the-panic-paradox")

	for i := 0; i < MaxMessages/2; i++ {
		if err := conv.Send(context.Background(), fmt.Sprintf("turn %d", i), nil); err != nil {
			t.Fatalf("exchange %d failed: %v", i, err)
		}
	}

	if !conv.AtLimit() {
		t.Fatalf("expected limit after %d messages, have %d", MaxMessages, len(conv.Messages()))
	}
	if err := conv.Send(context.Background(), "one more", nil); err != ErrLimitReached {
		t.Fatalf("expected ErrLimitReached, got %v", err)
	}

	// A fresh interview clears the cap.
	conv.Reset()
	if conv.AtLimit() {
		t.Fatal("expected limit cleared after reset")
	}
}

func TestBusyConversationRejectsConcurrentSend(t *testing.T) {
	release := make(chan struct{})
	firstDelta := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, fragmentRecord("slow"))
		flusher.Flush()
		select {
		case <-release:
		case <-r.Context().Done():
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
		flusher.Flush()
	}))
	defer srv.Close()

	conv := NewConversation(srv.URL, "secure-adopters", "centaur-underground")

	done := make(chan error, 1)
	go func() {
		done <- conv.Send(context.Background(), "first", func(string) {
			select {
			case <-firstDelta:
			default:
				close(firstDelta)
			}
		})
	}()

	<-firstDelta
	if err := conv.Send(context.Background(), "second", nil); err != ErrBusy {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first Send err: %v", err)
	}
}

func TestResetCancelsInFlightAndBlocksLateFragments(t *testing.T) {
	firstDelta := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, fragmentRecord("early"))
		flusher.Flush()
		<-r.Context().Done()
	}))
	defer srv.Close()

	conv := NewConversation(srv.URL, "institutional-sceptics", "sheltered-stagnation")

	done := make(chan error, 1)
	go func() {
		done <- conv.Send(context.Background(), "hello", func(string) {
			select {
			case <-firstDelta:
			default:
				close(firstDelta)
			}
		})
	}()

	<-firstDelta
	conv.Reset()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("cancelled Send should not report an error, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Send did not return after Reset")
	}

	if got := conv.Messages(); len(got) != 0 {
		t.Fatalf("expected empty history after reset, got %v", got)
	}
	if conv.State() != StateIdle {
		t.Fatalf("expected idle state, got %v", conv.State())
	}
}

func TestSwitchPersonaResetsHistory(t *testing.T) {
	srv := sseServer(t, fragmentRecord("hi"), "data: [DONE]\n\n")
	defer srv.Close()

	conv := NewConversation(srv.URL, "secure-adopters", "co-pilot-commons")
	if err := conv.Send(context.Background(), "hello", nil); err != nil {
		t.Fatalf("Send err: %v", err)
	}

	conv.SwitchPersona("disconnected", "drift-economy")
	if len(conv.Messages()) != 0 {
		t.Fatal("expected history cleared on persona switch")
	}
	if conv.Busy() {
		t.Fatal("expected conversation not busy after switch")
	}
}
