package ai

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/youthfutures/observatory/internal/config"
	chatmodel "github.com/youthfutures/observatory/internal/model/chat"
	"github.com/youthfutures/observatory/internal/model/futures"
)

// ErrUnknownPersona is returned when a population or scenario id does not
// resolve against the reference tables.
var ErrUnknownPersona = errors.New("unknown population or scenario id")

// Service streams persona interviews against the upstream chat model.
type Service struct {
	chatModel model.ChatModel
	catalog   futures.Store
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService builds the interview chain over the configured upstream model.
func NewService(ctx context.Context, catalog futures.Store, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile interview chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		catalog:   catalog,
		chain:     runnable,
	}, nil
}

// StreamInterview opens one streaming completion for the persona derived
// from the population and scenario, carrying the full validated message
// history as context. The caller owns the returned stream and must close it.
func (s *Service) StreamInterview(ctx context.Context, populationID, scenarioID string, messages []chatmodel.Message) (*schema.StreamReader[*schema.Message], error) {
	system, ok := BuildSystemPrompt(s.catalog, populationID, scenarioID)
	if !ok {
		return nil, ErrUnknownPersona
	}

	stream, err := s.chain.Stream(ctx, map[string]any{
		"system":  system,
		"history": toSchemaMessages(messages),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stream interview output: %w", err)
	}

	log.Printf("[ai] opened interview stream population=%s scenario=%s turns=%d", populationID, scenarioID, len(messages))
	return stream, nil
}

func toSchemaMessages(messages []chatmodel.Message) []*schema.Message {
	history := make([]*schema.Message, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case chatmodel.RoleUser:
			history = append(history, schema.UserMessage(msg.Content))
		case chatmodel.RoleAssistant:
			history = append(history, schema.AssistantMessage(msg.Content, nil))
		}
	}
	return history
}
