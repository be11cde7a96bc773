package scoring

// QuestionIDs 固定的 5 道题，顺序即展示顺序
var QuestionIDs = []string{"q1", "q2", "q3", "q4", "q5"}

var questionTexts = map[string]string{
	"q1": "I feel calm and in control.",
	"q2": "I have trouble sleeping.",
	"q3": "I've been feeling anxious.",
	"q4": "I've been able to concentrate today.",
	"q5": "I feel emotionally balanced.",
}

// AnswerOption 李克特五级选项
type AnswerOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

var AnswerOptions = []AnswerOption{
	{Value: 1, Label: "Strongly Disagree"},
	{Value: 2, Label: "Disagree"},
	{Value: 3, Label: "Neutral"},
	{Value: 4, Label: "Agree"},
	{Value: 5, Label: "Strongly Agree"},
}

// QuestionText 按题目ID取题干，未知ID返回占位文案
func QuestionText(id string) string {
	if text, ok := questionTexts[id]; ok {
		return text
	}
	return "Unknown question"
}

// Question 对外展示用的题目结构
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Questions 返回全部题目（按固定顺序）
func Questions() []Question {
	qs := make([]Question, 0, len(QuestionIDs))
	for _, id := range QuestionIDs {
		qs = append(qs, Question{ID: id, Text: questionTexts[id]})
	}
	return qs
}
