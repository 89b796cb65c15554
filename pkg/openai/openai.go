package openai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type ICoachAI interface {
	CoachReply(ctx context.Context, systemPrompt string, history []ConversationMessage) (string, error)
	GenerateCoachingMessage(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
	FeedbackReply(ctx context.Context, systemPrompt string, history []ConversationMessage) (string, error)
	ExtractMemory(ctx context.Context, userMessage string) (string, error)
	ClassifyDistress(ctx context.Context, text string) (bool, error)
}

type ConversationMessage struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

type coachAIService struct {
	client *openai.Client
	model  string
}

func NewCoachAI() ICoachAI {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_CHAT_MODEL")

	if model == "" {
		model = openai.GPT4oMini
	}

	return &coachAIService{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

const memoryExtractionSystemPrompt = "You are an information extraction assistant."

const memoryExtractionPrompt = `
Analyze the following user message and extract the single most important new fact or piece of information the user shared about themselves, their preferences, their situation, or significant events. Output ONLY the extracted fact as a concise phrase or sentence. If no significant new information is shared, output "NONE".

User Message:
%s

Extracted Fact:`

const distressClassifierPrompt = "Classify the sentiment of the following user message regarding their recent break experience. " +
	"Respond ONLY with 'negative_distress' if the user expresses significant ongoing stress, anxiety, " +
	"overwhelm, needing help, feeling bad/worse, or strong negative feelings. " +
	"Otherwise, respond ONLY with 'other'."

// CoachReply sends the assembled coach system prompt plus the chat history
// and returns the companion's next message.
func (c *coachAIService) CoachReply(ctx context.Context, systemPrompt string, history []ConversationMessage) (string, error) {
	return c.complete(ctx, systemPrompt, history, 0.7, 150)
}

// GenerateCoachingMessage produces the short microbreak coaching message.
func (c *coachAIService) GenerateCoachingMessage(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	history := []ConversationMessage{{Role: openai.ChatMessageRoleUser, Content: userPrompt}}
	return c.complete(ctx, systemPrompt, history, 0.7, 100)
}

// FeedbackReply acknowledges break feedback in one or two sentences.
func (c *coachAIService) FeedbackReply(ctx context.Context, systemPrompt string, history []ConversationMessage) (string, error) {
	return c.complete(ctx, systemPrompt, history, 0.5, 50)
}

// ExtractMemory pulls the most important new personal fact out of a user
// message. Returns "" when the model reports nothing worth remembering.
func (c *coachAIService) ExtractMemory(ctx context.Context, userMessage string) (string, error) {
	prompt := fmt.Sprintf(memoryExtractionPrompt, userMessage)
	history := []ConversationMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}}

	extracted, err := c.complete(ctx, memoryExtractionSystemPrompt, history, 0.2, 50)
	if err != nil {
		return "", err
	}

	if strings.EqualFold(extracted, "NONE") {
		return "", nil
	}

	return extracted, nil
}

// ClassifyDistress reports whether the text signals significant ongoing
// distress. Low temperature keeps the binary classification consistent.
func (c *coachAIService) ClassifyDistress(ctx context.Context, text string) (bool, error) {
	history := []ConversationMessage{{Role: openai.ChatMessageRoleUser, Content: text}}

	result, err := c.complete(ctx, distressClassifierPrompt, history, 0.1, 10)
	if err != nil {
		return false, err
	}

	return strings.ToLower(result) == "negative_distress", nil
}

func (c *coachAIService) complete(
	ctx context.Context,
	systemPrompt string,
	history []ConversationMessage,
	temperature float32,
	maxTokens int,
) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		},
	}

	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: temperature,
			MaxTokens:   maxTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
