// services/oracle.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"debate-arena/models"
	"debate-arena/utils"
)

// ScoreOracle scores a single debate argument in its (topic, turn)
// context, returning the three sub-scores in [0, 10]. Implementations
// may fail; callers absorb failure with neutral fallback scores.
type ScoreOracle interface {
	ScoreArgument(ctx context.Context, argument, topic string, turn int) (models.ArgumentScores, error)
}

// TopicOracle generates debate topics for a genre.
type TopicOracle interface {
	GenerateTopics(ctx context.Context, genre string) ([]string, error)
}

const geminiGenerateURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// GeminiClient implements ScoreOracle and TopicOracle against the Gemini
// REST API.
type GeminiClient struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		APIKey:  apiKey,
		BaseURL: geminiGenerateURL,
		Client:  utils.HTTPClient,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// generate sends one prompt and returns the first candidate's text.
func (g *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", g.BaseURL, g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("[Oracle] Gemini returned %d: %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("gemini call failed: %d", resp.StatusCode)
	}

	var out geminiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("malformed gemini response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty gemini response")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

var (
	logicPattern          = regexp.MustCompile(`(?i)logic[^0-9]*([0-9]+(?:\.[0-9]+)?)`)
	relevancePattern      = regexp.MustCompile(`(?i)relevance[^0-9]*([0-9]+(?:\.[0-9]+)?)`)
	persuasivenessPattern = regexp.MustCompile(`(?i)persuasiveness[^0-9]*([0-9]+(?:\.[0-9]+)?)`)
)

func extractScore(pattern *regexp.Regexp, content string) (float64, error) {
	m := pattern.FindStringSubmatch(content)
	if m == nil {
		return 0, fmt.Errorf("score missing from oracle response")
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, err
	}
	// Keep a misbehaving model inside the score range.
	if v < 0 {
		v = 0
	} else if v > 10 {
		v = 10
	}
	return v, nil
}

// ScoreArgument asks Gemini to grade one argument on logic, relevance and
// persuasiveness, each 0-10.
func (g *GeminiClient) ScoreArgument(ctx context.Context, argument, topic string, turn int) (models.ArgumentScores, error) {
	prompt := fmt.Sprintf(`Score this debate argument (Turn %d/%d) on:
- Logic (0-10)
- Relevance to topic (0-10)
- Persuasiveness (0-10)

Topic: %s
Argument: %s

Respond with only the numerical scores in this format:
Logic: [score]
Relevance: [score]
Persuasiveness: [score]`, turn, models.RoundsPerMatch, topic, argument)

	content, err := g.generate(ctx, prompt)
	if err != nil {
		return models.ArgumentScores{}, err
	}

	var scores models.ArgumentScores
	if scores.Logic, err = extractScore(logicPattern, content); err != nil {
		return models.ArgumentScores{}, err
	}
	if scores.Relevance, err = extractScore(relevancePattern, content); err != nil {
		return models.ArgumentScores{}, err
	}
	if scores.Persuasiveness, err = extractScore(persuasivenessPattern, content); err != nil {
		return models.ArgumentScores{}, err
	}
	return scores, nil
}

// GenerateTopics asks Gemini for three debate topics in the given genre.
func (g *GeminiClient) GenerateTopics(ctx context.Context, genre string) ([]string, error) {
	prompt := fmt.Sprintf(`Generate exactly 3 interesting and controversial debate topics related to %s.
The topics should be thought-provoking and suitable for a structured debate.
Each topic should be a complete question or statement.
Provide only the 3 topics without any additional text or numbering.`, genre)

	content, err := g.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var topics []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			topics = append(topics, line)
		}
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("no topics in oracle response")
	}
	if len(topics) > 3 {
		topics = topics[:3]
	}
	return topics, nil
}
