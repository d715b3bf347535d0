package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeProvider struct {
	out     string
	err     error
	gotText string
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.gotText = prompt
	return f.out, f.err
}

func TestGenerateSummary(t *testing.T) {
	fake := &fakeProvider{out: "A short summary."}
	svc := NewService(fake)

	got := svc.GenerateSummary(context.Background(), "Long note content here.")
	assert.Equal(t, "A short summary.", got)
	assert.True(t, strings.HasSuffix(fake.gotText, "Long note content here."))
	assert.Contains(t, fake.gotText, "Summarize the following note content")
}

func TestGenerateSummaryNoProvider(t *testing.T) {
	svc := NewService(nil)

	got := svc.GenerateSummary(context.Background(), "anything")
	assert.Equal(t, "Summary unavailable: no AI provider configured", got)
}

func TestGenerateSummaryProviderFailure(t *testing.T) {
	svc := NewService(&fakeProvider{err: errors.New("rate limited")})

	got := svc.GenerateSummary(context.Background(), "anything")
	assert.Equal(t, "Summary generation failed: rate limited", got)
}
