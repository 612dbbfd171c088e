package services

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestExtractText_ConcatenatesParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{genai.Text("Eat "), genai.Text("protein.")},
				},
			},
		},
	}

	if got := extractText(resp); got != "Eat protein." {
		t.Errorf("Expected 'Eat protein.', got %q", got)
	}
}

func TestExtractText_EmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
	}{
		{"no candidates", &genai.GenerateContentResponse{}},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}},
		{"no parts", &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractText(tc.resp); got != "" {
				t.Errorf("Expected empty text, got %q", got)
			}
		})
	}
}
