// Package voice turns lesson text into Minaria's spoken lines: a
// persona rewrite through the model, then speech synthesis. Voice is
// decorative; every failure here is logged and swallowed.
package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/Maho1100/minaria-quest/internal/content"
	"github.com/Maho1100/minaria-quest/internal/llm"
)

const (
	rewriteMaxTokens = 300
	speakTimeout     = 45 * time.Second
)

// utteranceSchema constrains the persona rewrite to a single spoken line.
var utteranceSchema = &llm.Schema{
	Name:        "persona-utterance",
	Description: "One short spoken line in Minaria's voice.",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"utterance": map[string]any{
				"type":        "string",
				"description": "The line exactly as Minaria would say it aloud, without markdown or code.",
			},
		},
		"required":             []any{"utterance"},
		"additionalProperties": false,
	},
}

// Synthesizer produces Minaria voice clips.
type Synthesizer struct {
	provider llm.Provider
	tts      *openai.Client
	voice    openai.SpeechVoice
}

// New creates a Synthesizer. The OpenAI key drives speech synthesis
// regardless of which vendor backs the persona rewrite.
func New(p llm.Provider, openaiKey string) *Synthesizer {
	return &Synthesizer{
		provider: p,
		tts:      openai.NewClient(openaiKey),
		voice:    openai.VoiceNova,
	}
}

// PersonaLine rewrites lesson text into a single line Minaria would
// say aloud.
func (s *Synthesizer) PersonaLine(ctx context.Context, text string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeVoiceRewrite)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: content.MinariaSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: "Rewrite this lesson text as one short line you would say aloud to the student:\n\n" + text,
		}},
		Schema:      utteranceSchema,
		MaxTokens:   rewriteMaxTokens,
		Temperature: 0.5,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Utterance string `json:"utterance"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("decode utterance: %w", err)
	}
	if out.Utterance == "" {
		return "", fmt.Errorf("empty utterance")
	}
	return out.Utterance, nil
}

// SpeakToFile rewrites the text in persona, synthesizes it, and writes
// an mp3 under dir. Returns the written path.
func (s *Synthesizer) SpeakToFile(ctx context.Context, text, dir string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, speakTimeout)
	defer cancel()

	line, err := s.PersonaLine(ctx, text)
	if err != nil {
		return "", fmt.Errorf("persona rewrite: %w", err)
	}

	resp, err := s.tts.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: line,
		Voice: s.voice,
	})
	if err != nil {
		return "", fmt.Errorf("synthesize speech: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create voice dir: %w", err)
	}
	path := filepath.Join(dir, "minaria-"+uuid.NewString()+".mp3")
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", fmt.Errorf("write audio: %w", err)
	}
	return path, nil
}
