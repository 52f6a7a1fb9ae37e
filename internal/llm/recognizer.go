package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const entitySystemPrompt = "You extract named entities (people, organizations, products, places) " +
	"from customer support messages. Reply with a JSON array of strings holding each entity " +
	"exactly as written in the message, in order of appearance, repeated if mentioned twice. " +
	"Reply with [] when there are none. Output only the JSON array."

// Recognizer asks a chat model for the named entities in a line of text.
// It implements capability.EntityRecognizer.
type Recognizer struct {
	Client *Client
}

// NewRecognizer creates a recognizer over client.
func NewRecognizer(client *Client) *Recognizer {
	return &Recognizer{Client: client}
}

// RecognizeEntities implements capability.EntityRecognizer. Entities the
// model returns that do not occur in text are dropped.
func (r *Recognizer) RecognizeEntities(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	reply, err := r.Client.Chat(context.Background(), entitySystemPrompt, text)
	if err != nil {
		return nil, err
	}
	ents, err := parseEntities(reply)
	if err != nil {
		return nil, err
	}

	out := ents[:0]
	for _, e := range ents {
		e = strings.TrimSpace(e)
		if e != "" && strings.Contains(text, e) {
			out = append(out, e)
		}
	}
	return out, nil
}

// parseEntities decodes a JSON string array, tolerating a markdown fence
// around it.
func parseEntities(reply string) ([]string, error) {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	reply = strings.TrimSpace(reply)

	var ents []string
	if err := json.Unmarshal([]byte(reply), &ents); err != nil {
		return nil, fmt.Errorf("llm: entity reply is not a JSON string array: %w", err)
	}
	return ents, nil
}
