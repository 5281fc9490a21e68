// ABOUTME: Builds the content and chat clients from application configuration
package llm

import (
	"fmt"

	"github.com/harper/momprep/internal/config"
)

// ClientsFromConfig creates the content-model and chat-model clients.
// Both are nil when no API key is configured.
func ClientsFromConfig(cfg *config.Config) (content, chat *OpenAIClient, err error) {
	if cfg.APIKey == "" {
		return nil, nil, nil
	}

	base := ClientConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Timeout:     cfg.Timeout,
		Temperature: 0.7,
	}

	contentCfg := base
	contentCfg.Model = cfg.ContentModel
	content, err = NewOpenAIClientWithConfig(&contentCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("content model: %w", err)
	}

	chatCfg := base
	chatCfg.Model = cfg.ChatModel
	chat, err = NewOpenAIClientWithConfig(&chatCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("chat model: %w", err)
	}

	return content, chat, nil
}
