package factory

import (
	"noteswise-be/pkg/summarizer"
	"noteswise-be/pkg/summarizer/gemini"
	"noteswise-be/pkg/summarizer/openai"
)

// NewSummarizer selects the provider by configured keys: Gemini wins when
// both are set, OpenAI is the fallback, and with neither the returned
// service produces a "not configured" string instead of summaries.
func NewSummarizer(geminiKey, openAIKey string) *summarizer.Service {
	if geminiKey != "" {
		return summarizer.NewService(gemini.NewGeminiProvider(geminiKey))
	}
	if openAIKey != "" {
		return summarizer.NewService(openai.NewOpenAIProvider(openAIKey))
	}
	return summarizer.NewService(nil)
}
