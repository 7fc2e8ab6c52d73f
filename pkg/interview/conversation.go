// Package interview is a client for the observatory chat endpoint. It owns
// one conversation's history, streams assistant replies incrementally, and
// supports cancelling an in-flight exchange at any point.
package interview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// State of a conversation's streaming controller.
type State int

const (
	StateIdle State = iota
	StateAwaitingFirstByte
	StateStreaming
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingFirstByte:
		return "awaiting-first-byte"
	case StateStreaming:
		return "streaming"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// MaxMessages caps a conversation at 40 messages, i.e. 20 exchanges. It
// matches the server's own limit so a conversation can never grow into a
// request the server would reject.
const MaxMessages = 40

// FallbackMessage replaces the assistant turn when a stream fails.
const FallbackMessage = "Something went wrong. Please try again."

const doneSentinel = "[DONE]"

var (
	// ErrBusy is returned when an exchange is already in flight.
	ErrBusy = errors.New("an exchange is already in flight")
	// ErrEmptyInput is returned for blank user input.
	ErrEmptyInput = errors.New("input is empty")
	// ErrLimitReached is returned once the exchange cap is hit.
	ErrLimitReached = errors.New("interview limit reached")
	// ErrIncompleteTurn marks a stream that closed without the terminal
	// sentinel.
	ErrIncompleteTurn = errors.New("stream ended without terminal sentinel")
)

// Message is one conversation turn on the wire.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Option configures a Conversation.
type Option func(*Conversation)

// WithHTTPClient overrides the HTTP client used for chat requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Conversation) {
		c.client = client
	}
}

// Conversation drives one persona interview. All methods are safe for
// concurrent use; at most one exchange is in flight at a time.
type Conversation struct {
	mu sync.Mutex

	id           string
	baseURL      string
	client       *http.Client
	populationID string
	scenarioID   string

	messages []Message
	state    State
	cancel   context.CancelFunc

	// generation increments on every Cancel/Reset so a superseded request
	// can never mutate history after the fact.
	generation uint64
}

// NewConversation creates an idle conversation bound to a population and
// scenario pair.
func NewConversation(baseURL, populationID, scenarioID string, opts ...Option) *Conversation {
	c := &Conversation{
		id:           uuid.NewString(),
		baseURL:      strings.TrimRight(baseURL, "/"),
		client:       &http.Client{Timeout: 150 * time.Second},
		populationID: populationID,
		scenarioID:   scenarioID,
		state:        StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the conversation's correlation id.
func (c *Conversation) ID() string { return c.id }

// State returns the controller state.
func (c *Conversation) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Messages returns a copy of the conversation history.
func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

// AtLimit reports whether the exchange cap has been reached.
func (c *Conversation) AtLimit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages) >= MaxMessages
}

// Busy reports whether an exchange is in flight.
func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateAwaitingFirstByte || c.state == StateStreaming
}

// Send submits one user turn and blocks until the assistant's reply has
// finished streaming, the stream fails, or the exchange is cancelled.
// onDelta, if non-nil, is invoked with the accumulated assistant text after
// every fragment; accumulation is append-only and never regresses.
func (c *Conversation) Send(ctx context.Context, input string, onDelta func(assistant string)) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return ErrEmptyInput
	}

	c.mu.Lock()
	if c.state == StateAwaitingFirstByte || c.state == StateStreaming {
		c.mu.Unlock()
		return ErrBusy
	}
	if len(c.messages) >= MaxMessages {
		c.mu.Unlock()
		return ErrLimitReached
	}

	c.messages = append(c.messages,
		Message{Role: "user", Content: input},
		Message{Role: "assistant", Content: ""},
	)
	// The request carries everything up to and including the new user
	// turn; the empty placeholder stays local.
	history := append([]Message(nil), c.messages[:len(c.messages)-1]...)

	gen := c.generation
	c.state = StateAwaitingFirstByte
	streamCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	err := c.stream(streamCtx, gen, history, onDelta)
	cancel()
	return c.finish(gen, err)
}

// SwitchPersona cancels any in-flight exchange, clears history, and rebinds
// the conversation to a new population and scenario pair.
func (c *Conversation) SwitchPersona(populationID, scenarioID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.abortLocked()
	c.populationID = populationID
	c.scenarioID = scenarioID
	c.messages = nil
	c.state = StateIdle
}

// Reset cancels any in-flight exchange and clears history, starting a new
// interview with the same persona.
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.abortLocked()
	c.messages = nil
	c.state = StateIdle
}

// Cancel aborts an in-flight exchange without clearing history. Partial
// assistant text already received is kept. Cancellation is not an error and
// never produces the fallback message.
func (c *Conversation) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.abortLocked()
	c.state = StateIdle
}

func (c *Conversation) abortLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
}

func (c *Conversation) stream(ctx context.Context, gen uint64, history []Message, onDelta func(string)) error {
	body, err := json.Marshal(struct {
		PopulationID string    `json:"populationId"`
		ScenarioID   string    `json:"scenarioId"`
		Messages     []Message `json:"messages"`
	}{c.populationID, c.scenarioID, history})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var reason struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&reason)
		if reason.Error != "" {
			return fmt.Errorf("server rejected request: %s", reason.Error)
		}
		return fmt.Errorf("server error: %d", resp.StatusCode)
	}

	// The stream is framed as newline-delimited records. A partial record
	// at the end of a read is carried into the next one.
	var carry string
	buf := make([]byte, 4096)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			carry += string(buf[:n])
			lines := strings.Split(carry, "\n")
			carry = lines[len(lines)-1]
			for _, line := range lines[:len(lines)-1] {
				if !strings.HasPrefix(line, "data: ") {
					continue
				}
				data := strings.TrimPrefix(line, "data: ")
				if data == doneSentinel {
					return nil
				}
				var fragment struct {
					Text string `json:"text"`
				}
				if err := json.Unmarshal([]byte(data), &fragment); err != nil {
					// One corrupted fragment must not sink the turn.
					log.Printf("[interview %s] skipping malformed fragment: %v", c.id, err)
					continue
				}
				if !c.appendDelta(gen, fragment.Text, onDelta) {
					return context.Canceled
				}
			}
		}
		if readErr == io.EOF {
			return ErrIncompleteTurn
		}
		if readErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return readErr
		}
	}
}

// appendDelta grows the placeholder assistant message. It refuses to touch
// history once the conversation has moved to a newer generation, which is
// what protects against late-arriving fragments from an aborted exchange.
func (c *Conversation) appendDelta(gen uint64, text string, onDelta func(string)) bool {
	c.mu.Lock()
	if c.generation != gen {
		c.mu.Unlock()
		return false
	}
	if c.state == StateAwaitingFirstByte {
		c.state = StateStreaming
	}
	last := len(c.messages) - 1
	c.messages[last].Content += text
	accumulated := c.messages[last].Content
	c.mu.Unlock()

	if onDelta != nil {
		onDelta(accumulated)
	}
	return true
}

func (c *Conversation) finish(gen uint64, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		// Superseded by Cancel/Reset/SwitchPersona while in flight; that
		// path already settled the state and owns the history.
		return nil
	}
	c.cancel = nil

	if err == nil {
		c.state = StateIdle
		return nil
	}
	if errors.Is(err, context.Canceled) {
		c.state = StateIdle
		return nil
	}

	// Failed turn: surface a terminal assistant message and keep the rest
	// of the conversation intact so the user can retry.
	c.state = StateErrored
	if last := len(c.messages) - 1; last >= 0 && c.messages[last].Role == "assistant" {
		c.messages[last].Content = FallbackMessage
	}
	return err
}
