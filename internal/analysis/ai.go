package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/citywatch/citywatch/internal/llm"
	"github.com/citywatch/citywatch/internal/models"
)

// AIAnalyzer delegates hotspot analysis to a generative-AI service. Any
// failure (client error, missing choices, unparseable or out-of-range
// output) falls back to the local engine silently; only a log line records
// the degradation, and the outcome is tagged with the reason.
type AIAnalyzer struct {
	Client      llm.ChatClient
	Model       string
	Temperature float64
	MaxTokens   int
	MaxRecords  int
	Fallback    Analyzer
	Logger      *logrus.Logger
}

// Analyze runs the AI analysis, degrading to the fallback on any error.
func (a AIAnalyzer) Analyze(ctx context.Context, in Input) (models.AnalysisOutcome, error) {
	if a.Client == nil || a.Model == "" {
		return a.degrade(ctx, in, fmt.Errorf("ai analyzer not configured"))
	}

	messages, err := a.buildPrompt(in)
	if err != nil {
		return a.degrade(ctx, in, err)
	}

	resp, err := a.Client.ChatCompletion(ctx, llm.ChatCompletionRequest{
		Model:       a.Model,
		Messages:    messages,
		Temperature: a.Temperature,
		MaxTokens:   a.MaxTokens,
		TopP:        0.9,
	})
	if err != nil {
		return a.degrade(ctx, in, err)
	}
	if len(resp.Choices) == 0 {
		return a.degrade(ctx, in, fmt.Errorf("ai response missing choices"))
	}

	result, err := parseResult(resp.Choices[0].Message.Content)
	if err != nil {
		return a.degrade(ctx, in, err)
	}

	return models.AnalysisOutcome{Result: result}, nil
}

// degrade runs the local engine and tags the outcome with the cause.
func (a AIAnalyzer) degrade(ctx context.Context, in Input, cause error) (models.AnalysisOutcome, error) {
	if a.Logger != nil {
		a.Logger.WithError(cause).Warn("AI analysis unavailable, using local clusterer")
	}
	if a.Fallback == nil {
		return models.AnalysisOutcome{}, fmt.Errorf("analysis: no fallback engine: %w", cause)
	}
	outcome, err := a.Fallback.Analyze(ctx, in)
	if err != nil {
		return models.AnalysisOutcome{}, fmt.Errorf("analysis: fallback failed: %v (original: %w)", err, cause)
	}
	outcome.Degraded = true
	outcome.DegradedReason = cause.Error()
	return outcome, nil
}

func (a AIAnalyzer) buildPrompt(in Input) ([]llm.Message, error) {
	limited := in
	if a.MaxRecords > 0 {
		if len(limited.Incidents) > a.MaxRecords {
			limited.Incidents = limited.Incidents[:a.MaxRecords]
		}
		if len(limited.Cameras) > a.MaxRecords {
			limited.Cameras = limited.Cameras[:a.MaxRecords]
		}
		if len(limited.News) > a.MaxRecords {
			limited.News = limited.News[:a.MaxRecords]
		}
	}

	payload, err := json.Marshal(map[string]any{
		"incidents": limited.Incidents,
		"cameras":   limited.Cameras,
		"news":      limited.News,
	})
	if err != nil {
		return nil, fmt.Errorf("ai prompt marshal: %w", err)
	}

	system := "You are a public-safety analyst who clusters city incident and camera data into geographic hotspots. Respond STRICTLY with valid JSON."
	user := fmt.Sprintf(`Analyze the following city records and identify geographic hotspots.
Rules:
- Group records by proximity (roughly 0.1 degree cells).
- intensity is a number in [0,100].
- threat_level is one of "low", "medium", "high".
- Keep at most 15 hotspots, sorted by intensity descending.

Respond with JSON using this schema:
{
  "hotspots": [
    {"lat": 0.0, "lng": 0.0, "intensity": 0, "description": "...", "incident_count": 0, "camera_count": 0, "top_incident": "..."}
  ],
  "correlations": [
    {"lat": 0.0, "lng": 0.0, "incident_count": 0, "camera_count": 0, "description": "..."}
  ],
  "threat_level": "low",
  "summary": "..."
}

Records payload:
%s`, string(payload))

	return []llm.Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}, nil
}

// parseResult decodes and validates the model output against the
// AnalysisResult shape, clamping intensities into range.
func parseResult(content string) (models.AnalysisResult, error) {
	var result models.AnalysisResult

	payload := extractJSON(content)
	if payload == "" {
		return result, fmt.Errorf("ai response missing json payload")
	}
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return result, fmt.Errorf("ai response decode: %w", err)
	}
	if !result.ThreatLevel.Valid() {
		return result, fmt.Errorf("ai response invalid threat level %q", result.ThreatLevel)
	}

	for i := range result.Hotspots {
		result.Hotspots[i].Intensity = clampIntensity(result.Hotspots[i].Intensity)
	}
	if result.Hotspots == nil {
		result.Hotspots = []models.Hotspot{}
	}
	if result.Correlations == nil {
		result.Correlations = []models.Correlation{}
	}
	result.AnalyzedAt = now()

	return result, nil
}

// extractJSON salvages the outermost JSON object from a chat response that
// may carry prose or code fences around it.
func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return content[start : end+1]
}
