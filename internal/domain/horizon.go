package domain

import (
	"fmt"
	"strings"
)

type Horizon string

const (
	HorizonShort  Horizon = "short"
	HorizonMedium Horizon = "medium"
	HorizonLong   Horizon = "long"
)

// AllHorizons is the evaluation order. Every cycle covers exactly these.
var AllHorizons = []Horizon{
	HorizonShort,
	HorizonMedium,
	HorizonLong,
}

func ParseHorizon(s string) (Horizon, error) {
	h := Horizon(strings.ToLower(strings.TrimSpace(s)))
	switch h {
	case HorizonShort, HorizonMedium, HorizonLong:
		return h, nil
	}
	return "", fmt.Errorf("invalid horizon %q - must be one of short, medium, long", s)
}

type Sentiment string

const (
	SentimentBullish  Sentiment = "bullish"
	SentimentBearish  Sentiment = "bearish"
	SentimentCautious Sentiment = "cautious"
	SentimentNeutral  Sentiment = "neutral"
)

func (s Sentiment) Valid() bool {
	switch s {
	case SentimentBullish, SentimentBearish, SentimentCautious, SentimentNeutral:
		return true
	}
	return false
}

func ParseSentiment(s string) (Sentiment, error) {
	sentiment := Sentiment(strings.ToLower(strings.TrimSpace(s)))
	if !sentiment.Valid() {
		return "", fmt.Errorf("invalid sentiment %q", s)
	}
	return sentiment, nil
}
