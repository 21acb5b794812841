package recognizer

import (
	"context"
	"encoding/json"
	"fmt"

	"smart-planner/internal/model"
	"smart-planner/pkg/llmprovider"
)

// Recognize classifies one utterance. It never returns an error: every
// remote failure (transport, timeout, malformed reply) falls through to
// the deterministic local path, which always produces a result.
func (r *Recognizer) Recognize(ctx context.Context, text string) model.IntentResult {
	if r.RemoteAvailable() {
		if res, ok := r.recognizeRemote(ctx, text); ok {
			return res
		}
		// The failed remote attempt must leave no trace on context;
		// recognizeRemote only reads it.
	}
	return r.recognizeLocally(text)
}

// recognizeRemote asks the configured classifier chain for a strict JSON
// intent object. Returns ok=false on any failure so the caller can fall
// back without surfacing an error.
func (r *Recognizer) recognizeRemote(ctx context.Context, text string) (model.IntentResult, bool) {
	prompt := r.buildContextBlock() + fmt.Sprintf("用户消息：%q", text)

	resp, err := r.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  string(model.RoleSystem),
			Parts: []llmprovider.Part{{Text: PromptRecognizerSystem}},
		},
		Messages: []llmprovider.Message{
			{Role: string(model.RoleUser), Parts: []llmprovider.Part{{Text: prompt}}},
		},
		Temperature: RecognizerTemperature,
		MaxTokens:   RecognizerMaxTokens,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: remote classification failed, using local fallback: %v", LogPrefixRecognize, err)
		return model.IntentResult{}, false
	}

	raw := resp.Text()
	jsonSpan, ok := extractJSON(raw)
	if !ok {
		r.l.Warnf(ctx, "%s: no JSON object in remote reply, using local fallback", LogPrefixRecognize)
		return model.IntentResult{}, false
	}

	var wire wireResult
	if err := json.Unmarshal([]byte(jsonSpan), &wire); err != nil {
		r.l.Warnf(ctx, "%s: malformed JSON in remote reply, using local fallback: %v", LogPrefixRecognize, err)
		return model.IntentResult{}, false
	}

	result := r.normalize(wire)
	r.l.Infof(ctx, "%s: remote classified %s (confidence %.2f)", LogPrefixRecognize, result.Intent, result.Confidence)
	return result, true
}

// normalize fills defaults and merges remote entities on top of the
// already-collected pool (new values win).
func (r *Recognizer) normalize(wire wireResult) model.IntentResult {
	result := model.IntentResult{
		Intent:                parseIntent(wire.Intent),
		Action:                parseAction(wire.Action),
		Confidence:            parseConfidence(wire.Confidence),
		NeedsClarification:    wire.NeedsClarification,
		ClarificationQuestion: wire.ClarificationQuestion,
		SuggestedResponse:     wire.SuggestedResponse,
	}

	for _, sub := range wire.SubIntents {
		if intent := parseIntent(sub); intent != model.IntentUnknown {
			result.SubIntents = append(result.SubIntents, intent)
		}
	}

	extracted := model.Entities{}
	for k, v := range wire.Entities {
		extracted[model.Slot(k)] = v
	}
	result.Entities = r.convCtx.State.CollectedEntities.Clone().Merge(extracted)

	if result.Intent == model.IntentUnknown {
		result.NeedsClarification = true
		if result.ClarificationQuestion == "" {
			result.ClarificationQuestion = ClarificationFallback
		}
	}

	return result
}
