package models

import (
	"fmt"
	"time"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	SentimentMixed    Sentiment = "mixed"
)

// JournalEntry is a single journal record. Entries are kept newest-first
// in the state tree.
type JournalEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      int       `json:"mood"` // 1-5
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	Sentiment Sentiment `json:"sentiment,omitempty"`
}

func (e JournalEntry) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("journal entry title must not be empty")
	}
	if e.Mood < 1 || e.Mood > 5 {
		return fmt.Errorf("mood must be between 1 and 5, got %d", e.Mood)
	}
	switch e.Sentiment {
	case "", SentimentPositive, SentimentNeutral, SentimentNegative, SentimentMixed:
	default:
		return fmt.Errorf("invalid sentiment: %s", e.Sentiment)
	}
	return nil
}
