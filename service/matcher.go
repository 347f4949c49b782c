package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"ticketwise-cli/catalog"
)

// MatchSource tells the UI which path produced a result set.
type MatchSource string

const (
	MatchSourceGemini   MatchSource = "gemini"
	MatchSourceFallback MatchSource = "fallback"
)

const (
	maxRecommendations = 3

	defaultIntent = "Finding events for you..."
	popularIntent = "Showing you our top picks"

	fallbackExplanation = "This matches what you're looking for based on your interests."
	popularExplanation  = "This is one of our most popular events right now!"
)

const matchPromptTemplate = `You are an event recommendation AI. The user is looking for something to do.

User's request: %q

Available events:
%s

Analyze the user's intent and recommend 1-3 events that best match. Return JSON only:
{
  "interpretedIntent": "Brief description of what the user is looking for",
  "recommendations": [
    {
      "id": "event_id",
      "explanation": "2-3 sentence explanation of why this matches their request. Be specific and personal.",
      "matchScore": 0.95
    }
  ]
}

Focus on:
- Topic and interest alignment
- Mood and vibe matching
- Any time or social preferences mentioned
- Return fewer if there are not enough good matches`

// Recommendation pairs a catalog item with the reason it was picked.
type Recommendation struct {
	Item        catalog.Item
	Explanation string
	MatchScore  float64
}

// MatchResult is what a discovery query produces. Err carries the remote
// failure message when the fallback path had to take over; the
// recommendations themselves are always usable.
type MatchResult struct {
	Recommendations   []Recommendation
	InterpretedIntent string
	Source            MatchSource
	Err               string
}

// Matcher turns free-text queries into ranked catalog picks. With a
// configured client it asks the model; without one, or on any remote
// failure, it falls back to local keyword scoring.
type Matcher struct {
	client *GeminiClient
	items  []catalog.Item
	byID   map[string]catalog.Item
}

// NewMatcher builds a matcher over the given items. A nil item slice
// means the full catalog; a nil client disables the remote path.
func NewMatcher(client *GeminiClient, items []catalog.Item) *Matcher {
	if items == nil {
		items = catalog.Items()
	}
	byID := make(map[string]catalog.Item, len(items))
	for _, it := range items {
		byID[it.ID()] = it
	}
	return &Matcher{client: client, items: items, byID: byID}
}

// Match resolves a query into at most three recommendations. It never
// returns an error: any remote failure degrades to the local fallback.
func (m *Matcher) Match(ctx context.Context, query string) MatchResult {
	if !m.client.hasKey() {
		return m.fallback(query, "")
	}
	res, err := m.matchRemote(ctx, query)
	if err != nil {
		return m.fallback(query, err.Error())
	}
	return res
}

type remoteMatchPayload struct {
	InterpretedIntent string `json:"interpretedIntent"`
	Recommendations   []struct {
		ID          string  `json:"id"`
		Explanation string  `json:"explanation"`
		MatchScore  float64 `json:"matchScore"`
	} `json:"recommendations"`
}

func (m *Matcher) matchRemote(ctx context.Context, query string) (MatchResult, error) {
	entries, err := json.MarshalIndent(catalog.Entries(m.items), "", "  ")
	if err != nil {
		return MatchResult{}, fmt.Errorf("encode catalog: %w", err)
	}

	prompt := fmt.Sprintf(matchPromptTemplate, query, entries)
	text, err := m.client.GenerateContent(ctx, prompt, GenerateOptions{JSONResponse: true})
	if err != nil {
		return MatchResult{}, err
	}

	var payload remoteMatchPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return MatchResult{}, fmt.Errorf("parse model response: %w", err)
	}

	recs := make([]Recommendation, 0, maxRecommendations)
	for _, r := range payload.Recommendations {
		item, ok := m.byID[r.ID]
		if !ok {
			// The model hallucinated an id; skip it.
			continue
		}
		recs = append(recs, Recommendation{
			Item:        item,
			Explanation: r.Explanation,
			MatchScore:  r.MatchScore,
		})
		if len(recs) == maxRecommendations {
			break
		}
	}

	intent := strings.TrimSpace(payload.InterpretedIntent)
	if intent == "" {
		intent = defaultIntent
	}
	return MatchResult{
		Recommendations:   recs,
		InterpretedIntent: intent,
		Source:            MatchSourceGemini,
	}, nil
}

// fallback scores every item against the query with plain keyword
// matching. It is deterministic: equal scores keep catalog order.
func (m *Matcher) fallback(query, remoteErr string) MatchResult {
	q := strings.ToLower(query)
	words := strings.Fields(q)

	type scored struct {
		item  catalog.Item
		score int
	}
	var hits []scored
	for _, item := range m.items {
		s := fallbackScore(item, q, words)
		if s > 0 {
			hits = append(hits, scored{item: item, score: s})
		}
	}

	if len(hits) == 0 {
		return MatchResult{
			Recommendations:   m.popularPicks(),
			InterpretedIntent: popularIntent,
			Source:            MatchSourceFallback,
			Err:               remoteErr,
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	if len(hits) > maxRecommendations {
		hits = hits[:maxRecommendations]
	}

	recs := make([]Recommendation, 0, len(hits))
	for _, h := range hits {
		score := float64(h.score) / 10
		if score > 1 {
			score = 1
		}
		recs = append(recs, Recommendation{
			Item:        h.item,
			Explanation: fallbackExplanation,
			MatchScore:  score,
		})
	}
	return MatchResult{
		Recommendations:   recs,
		InterpretedIntent: "Looking for: " + query,
		Source:            MatchSourceFallback,
		Err:               remoteErr,
	}
}

func fallbackScore(item catalog.Item, query string, words []string) int {
	score := 0
	for _, kw := range fallbackKeywords(item) {
		if strings.Contains(query, strings.ToLower(kw)) {
			score += 2
		}
	}
	if strings.Contains(query, strings.ToLower(item.Title())) {
		score += 5
	}
	desc := strings.ToLower(item.Description())
	for _, w := range words {
		if len(w) > 3 && strings.Contains(desc, w) {
			score++
			break
		}
	}
	return score
}

func fallbackKeywords(item catalog.Item) []string {
	if item.IsMovie() {
		kws := append([]string(nil), item.Movie.Genre...)
		return append(kws, "movie", "film", "cinema", strings.ToLower(item.Movie.Title))
	}
	return []string{
		item.Event.Type,
		strings.ToLower(item.Event.Title),
		strings.ToLower(item.Event.Venue),
	}
}

// popularPicks is the zero-hit default: the first two movies and the
// first event, in catalog order.
func (m *Matcher) popularPicks() []Recommendation {
	var recs []Recommendation
	movies := 0
	for _, item := range m.items {
		if item.IsMovie() && movies < 2 {
			recs = append(recs, popularPick(item))
			movies++
		}
	}
	for _, item := range m.items {
		if !item.IsMovie() {
			recs = append(recs, popularPick(item))
			break
		}
	}
	return recs
}

func popularPick(item catalog.Item) Recommendation {
	return Recommendation{
		Item:        item,
		Explanation: popularExplanation,
		MatchScore:  0.5,
	}
}
