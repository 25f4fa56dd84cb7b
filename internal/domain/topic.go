package domain

// TopicData is the normalized encyclopedia summary for a topic.
// It is created by the encyclopedia client and never modified afterwards.
type TopicData struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	Description string `json:"description"`
	// URL is the canonical desktop page. Empty when the upstream omits it.
	URL string `json:"url"`
}
