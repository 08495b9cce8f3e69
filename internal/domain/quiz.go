package domain

import "time"

// Question is one of the 12 quiz questions. Option order matters: the
// caller sends back the chosen option index.
type Question struct {
	ID        int       `json:"id"`
	Dimension Dimension `json:"dimension"`
	Text      string    `json:"text"`
	Options   []Option  `json:"options"`
}

// Option is a quiz answer choice and the trait value it maps to.
type Option struct {
	Text   string `json:"text"`
	MapsTo Value  `json:"maps_to"`
}

// QuizSession is caller-owned state for one quiz run: chosen domain, answer
// indexes collected so far, and the names shown on previous runs of the same
// session so a retake does not land on the identical top match.
type QuizSession struct {
	ID            string    `json:"id"`
	Domain        string    `json:"domain"`
	Answers       []int     `json:"answers"`
	RecentlyShown []string  `json:"recently_shown"`
	CreatedAt     time.Time `json:"created_at"`
}

// FeedbackEvent records a play or a liked result for the analytics board.
type FeedbackEvent struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Scientist string    `json:"scientist"`
	Kind      string    `json:"kind"` // "play" or "like"
	CreatedAt time.Time `json:"created_at"`
}
