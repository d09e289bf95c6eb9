package classifier

import (
	"context"
	"fmt"

	"marketplace-assistant/internal/model"
	"marketplace-assistant/internal/taxonomy"
	"marketplace-assistant/pkg/gemini"
)

// classifyWithModel asks the completion service for a single category
// token. Replies outside the closed set resolve to OUT_OF_SCOPE; any
// transport failure resolves to ErrCompletionUnavailable so the caller
// can degrade instead of crashing.
func (c *hybridClassifier) classifyWithModel(ctx context.Context, utterance string, role model.Role) (taxonomy.IntentCategory, error) {
	prompt := buildPrompt(utterance, role)

	resp, err := c.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature: ClassifyTemperature,
		},
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: completion call failed: %v", LogPrefixClassify, err)
		return taxonomy.CategoryOutOfScope, ErrCompletionUnavailable
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		c.l.Warnf(ctx, "%s: empty completion reply", LogPrefixClassify)
		return taxonomy.CategoryOutOfScope, ErrCompletionUnavailable
	}

	raw := resp.Candidates[0].Content.Parts[0].Text
	category, recognized := taxonomy.ParseCategory(raw)
	if !recognized {
		c.l.Warnf(ctx, "%s: unrecognized reply %q, resolving to OUT_OF_SCOPE", LogPrefixClassify, raw)
	}
	return category, nil
}

func buildPrompt(utterance string, role model.Role) string {
	return fmt.Sprintf(PromptClassify, role, utterance)
}
