package quiz

// Question is one multiple-choice question. JSON tags match the shape
// the mobile client renders, so a quiz marshals straight into an API
// response.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	// CorrectIndex is the zero-based index into Options. Serialized as
	// "correct" for the client.
	CorrectIndex int `json:"correct"`
}

// Quiz is a generated set of questions on a single topic.
type Quiz struct {
	Topic     string     `json:"topic,omitempty"`
	Questions []Question `json:"questions"`
}

const (
	// DefaultQuestionCount is used when the caller does not ask for a
	// specific number of questions.
	DefaultQuestionCount = 3

	// MaxQuestionCount caps a single generation request.
	MaxQuestionCount = 10
)

// clampCount normalizes a requested question count.
func clampCount(n int) int {
	if n <= 0 {
		return DefaultQuestionCount
	}
	if n > MaxQuestionCount {
		return MaxQuestionCount
	}
	return n
}
