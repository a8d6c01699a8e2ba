package advisor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Expert is a chat with a model that may call the functions of its Library.
type Expert struct {
	Name      string
	ModelName string
	Config    *genai.GenerateContentConfig
	Library   Library
	chat      *genai.Chat
	// MaxCalls bounds the function calls answered for one question.
	MaxCalls int
}

// Start creates the chat session.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask sends parts to the chat. Function calls of the model are answered with
// the Library until the model returns text.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	for calls := 0; ; calls++ {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil {
			return nil, err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return nil, fmt.Errorf("no response from expert %s", e.Name)
		}
		content := resp.Candidates[0].Content
		fcalls := resp.FunctionCalls()
		if len(fcalls) == 0 {
			return content, nil
		}
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		if e.MaxCalls > 0 && calls >= e.MaxCalls {
			return nil, fmt.Errorf("expert %s made too many function calls", e.Name)
		}
		parts = make([]*genai.Part, 0, len(fcalls))
		for _, call := range fcalls {
			parts = append(parts, &genai.Part{FunctionResponse: e.Library(ctx, call)})
		}
	}
}

// Text returns the concatenated text parts of content.
func Text(content *genai.Content) string {
	var s string
	for _, p := range content.Parts {
		s += p.Text
	}
	return s
}
