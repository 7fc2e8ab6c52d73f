package chat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/go-chi/chi/v5"

	chatmodel "github.com/youthfutures/observatory/internal/model/chat"
	"github.com/youthfutures/observatory/internal/model/futures"
	"github.com/youthfutures/observatory/internal/service/ai"
	"github.com/youthfutures/observatory/pkg/utils"
)

// DoneSentinel is the literal payload of the terminal stream record.
const DoneSentinel = "[DONE]"

// streamDeadline bounds the total duration of one interview stream so a
// stalled upstream can never pin a response open indefinitely.
const streamDeadline = 120 * time.Second

const (
	errInvalidPersona  = "Invalid population or scenario ID"
	errInvalidMessages = "Messages must be an array of 1-40 items"
)

// Streamer opens one streaming completion for a persona interview.
type Streamer interface {
	StreamInterview(ctx context.Context, populationID, scenarioID string, messages []chatmodel.Message) (*schema.StreamReader[*schema.Message], error)
}

// Handler relays upstream interview streams to clients as SSE.
type Handler struct {
	streamer Streamer
	catalog  futures.Store
}

// New creates the interview stream handler.
func New(streamer Streamer, catalog futures.Store) *Handler {
	return &Handler{streamer: streamer, catalog: catalog}
}

// RegisterRoutes mounts the chat endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleInterview)
}

// Fragment is one incremental text delta relayed to the client.
type Fragment struct {
	Text string `json:"text"`
}

type interviewRequest struct {
	PopulationID string          `json:"populationId"`
	ScenarioID   string          `json:"scenarioId"`
	Messages     json.RawMessage `json:"messages"`
}

func (h *Handler) handleInterview(w http.ResponseWriter, r *http.Request) {
	var payload interviewRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Validation is fail-fast and in order: persona ids first, then the
	// message list. No upstream call is made on any validation failure.
	if _, ok := ai.BuildSystemPrompt(h.catalog, payload.PopulationID, payload.ScenarioID); !ok {
		utils.RespondError(w, http.StatusBadRequest, errInvalidPersona)
		return
	}

	var messages []chatmodel.Message
	if err := json.Unmarshal(payload.Messages, &messages); err != nil {
		utils.RespondError(w, http.StatusBadRequest, errInvalidMessages)
		return
	}
	if len(messages) == 0 || len(messages) > chatmodel.MaxMessages {
		utils.RespondError(w, http.StatusBadRequest, errInvalidMessages)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), streamDeadline)
	defer cancel()

	stream, err := h.streamer.StreamInterview(ctx, payload.PopulationID, payload.ScenarioID, messages)
	if err != nil {
		log.Printf("[chat] failed to open upstream stream: %v", err)
		utils.RespondError(w, http.StatusBadGateway, "upstream unavailable")
		return
	}
	defer stream.Close()

	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// The sentinel is emitted on every exit path once streaming has
	// started, including upstream failure mid-stream.
	defer utils.SendSSERaw(w, flusher, DoneSentinel)

	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			return
		}
		if recvErr != nil {
			log.Printf("[chat] upstream stream ended early: %v", recvErr)
			return
		}
		if chunk == nil || chunk.Content == "" {
			// Control and metadata chunks carry no text; skip them.
			continue
		}
		utils.SendSSEChunk(w, flusher, Fragment{Text: chunk.Content})
	}
}
