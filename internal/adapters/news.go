package adapters

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/citywatch/citywatch/internal/models"
)

// newsResponse is the aggregator API envelope (NewsAPI-compatible).
type newsResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// NewsAdapter maps aggregator articles to NewsArticle, deriving sentiment
// and a coarse category by keyword counting.
type NewsAdapter struct {
	client *http.Client
	url    string
}

// NewNewsAdapter builds the adapter for the configured feed URL.
func NewNewsAdapter(timeout time.Duration, url string) *NewsAdapter {
	return &NewsAdapter{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// Name identifies the adapter in facade logs.
func (a *NewsAdapter) Name() string { return "news" }

// FetchNews retrieves and normalizes the aggregator feed.
func (a *NewsAdapter) FetchNews(ctx context.Context) ([]models.NewsArticle, error) {
	if a.url == "" {
		return nil, fmt.Errorf("news adapter: feed URL not configured")
	}

	var raw newsResponse
	if err := getJSON(ctx, a.client, a.url, &raw); err != nil {
		return nil, fmt.Errorf("news adapter: %w", err)
	}
	if raw.Status != "" && raw.Status != "ok" {
		return nil, fmt.Errorf("news adapter: upstream status %q", raw.Status)
	}

	articles := make([]models.NewsArticle, 0, len(raw.Articles))
	for _, rec := range raw.Articles {
		if rec.Title == "" {
			continue
		}
		text := rec.Title + " " + rec.Description
		articles = append(articles, models.NewsArticle{
			ID:        uuid.NewString(),
			Title:     rec.Title,
			Source:    coalesce(rec.Source.Name, "unknown"),
			Time:      parseTimestamp(rec.PublishedAt),
			Sentiment: deriveSentiment(text),
			Category:  deriveCategory(text),
		})
	}

	return articles, nil
}

var (
	positiveTerms = []string{"rescue", "improve", "celebrat", "success", "reopen", "award", "recover"}
	negativeTerms = []string{"crime", "shooting", "crash", "fire", "death", "violence", "threat", "injur"}
)

// deriveSentiment counts keyword hits; it is deliberately naive, not a model.
func deriveSentiment(text string) string {
	text = strings.ToLower(text)
	var pos, neg int
	for _, term := range positiveTerms {
		if strings.Contains(text, term) {
			pos++
		}
	}
	for _, term := range negativeTerms {
		if strings.Contains(text, term) {
			neg++
		}
	}
	switch {
	case neg > pos:
		return "negative"
	case pos > neg:
		return "positive"
	default:
		return "neutral"
	}
}

func deriveCategory(text string) string {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "police") || strings.Contains(text, "crime") || strings.Contains(text, "shooting"):
		return "crime"
	case strings.Contains(text, "traffic") || strings.Contains(text, "road") || strings.Contains(text, "transit"):
		return "traffic"
	case strings.Contains(text, "weather") || strings.Contains(text, "storm") || strings.Contains(text, "flood"):
		return "weather"
	default:
		return "general"
	}
}
