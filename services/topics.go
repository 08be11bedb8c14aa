// services/topics.go
package services

import (
	"context"
	"log"
	"strings"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"debate-arena/models"
)

// genreCatalog is the fixed set of debate genres, keyed by slug.
var genreCatalog = []string{
	"sports",
	"cinema",
	"philosophy",
	"music",
	"geopolitics",
	"brainrot",
}

// fallbackTopics back the topic endpoint when the oracle is down.
var fallbackTopics = map[string][]string{
	"sports": {
		"Should esports be included in the Olympics?",
		"Should college athletes be paid?",
		"Is VAR improving or ruining football?",
	},
	"cinema": {
		"Are superhero movies ruining cinema?",
		"Should streaming platforms release all episodes at once?",
		"Are remakes necessary in modern cinema?",
	},
	"philosophy": {
		"Does free will exist?",
		"Is morality objective or subjective?",
		"Can artificial intelligence be conscious?",
	},
	"music": {
		"Is streaming helping or hurting musicians?",
		"Has auto-tune ruined modern music?",
		"Should music education be mandatory in schools?",
	},
	"geopolitics": {
		"Should the UN Security Council be reformed?",
		"Is economic globalization beneficial for all countries?",
		"Should nuclear weapons be globally banned?",
	},
	"brainrot": {
		"Is cereal a soup?",
		"Do hot dogs qualify as sandwiches?",
		"Should pineapple be allowed on pizza?",
	},
}

// TopicService serves the genre catalog and genre-scoped topic
// suggestions, oracle-backed with hardcoded fallbacks.
type TopicService struct {
	oracle TopicOracle
	titler cases.Caser
}

func NewTopicService(oracle TopicOracle) *TopicService {
	return &TopicService{
		oracle: oracle,
		titler: cases.Title(language.English),
	}
}

// GenreEntry is one catalog entry: the lookup key plus a display label.
type GenreEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Genres lists the catalog in fixed order.
func (s *TopicService) Genres() []GenreEntry {
	entries := make([]GenreEntry, 0, len(genreCatalog))
	for _, key := range genreCatalog {
		entries = append(entries, GenreEntry{
			Key:   key,
			Label: s.titler.String(strings.ReplaceAll(key, "-", " ")),
		})
	}
	return entries
}

// ValidGenres returns just the catalog keys.
func (s *TopicService) ValidGenres() []string {
	return append([]string(nil), genreCatalog...)
}

// TopicsForGenre returns three debate topics for the genre. Input is
// slugged before lookup so casing and accents don't matter. Oracle
// failure falls back to the canned list; an unknown genre is an error.
func (s *TopicService) TopicsForGenre(ctx context.Context, genre string) ([]string, error) {
	key := slug.Make(genre)
	if _, ok := fallbackTopics[key]; !ok {
		return nil, models.ErrInvalidGenre
	}

	topics, err := s.oracle.GenerateTopics(ctx, key)
	if err != nil || len(topics) < 3 {
		if err != nil {
			log.Printf("[Topics] oracle failed for genre %s, using fallback topics: %v", key, err)
		}
		return append([]string(nil), fallbackTopics[key]...), nil
	}
	return topics[:3], nil
}
