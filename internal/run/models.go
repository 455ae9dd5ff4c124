package run

// TopWord is one ranked entry in the run summary.
type TopWord struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Summary is the structured output printed after a run.
type Summary struct {
	URL                string    `json:"url" yaml:"url"`
	Status             string    `json:"status" yaml:"status"`
	FromCache          bool      `json:"from_cache" yaml:"from_cache"`
	Language           string    `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64   `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
	TokenCount         int       `json:"token_count" yaml:"token_count"`
	DistinctWords      int       `json:"distinct_words" yaml:"distinct_words"`
	TopWords           []TopWord `json:"top_words,omitempty" yaml:"top_words,omitempty"`
	ChartPath          string    `json:"chart_path,omitempty" yaml:"chart_path,omitempty"`
	TotalTimeSeconds   float64   `json:"total_time_seconds" yaml:"total_time_seconds"`
}
