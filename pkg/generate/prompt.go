package generate

import (
	"strings"

	"github.com/artem13815/ai-service/pkg/nlp"
)

const SystemPrompt = "You are a helpful dental clinic assistant. Keep answers concise, safe, and non-diagnostic."

// BuildPrompt renders the single text prompt sent to the remote provider.
// Segment order and punctuation are fixed so the output is deterministic.
func BuildPrompt(req Request) string {
	parts := []string{SystemPrompt, "Patient message: " + nlp.AsSentence(req.Message)}
	if pc := req.PatientContext; pc != nil {
		parts = append(parts, "Patient name: "+nlp.AsSentence(pc.Name))
		if notes := pc.Notes(); notes != "" {
			parts = append(parts, "Notes: "+nlp.AsSentence(notes))
		}
	}
	return strings.Join(parts, " ")
}
