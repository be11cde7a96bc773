package scoring

import "errors"

// MoodCategory 情绪分类，创建结果时计算一次并随行存储，之后不再重新推导
type MoodCategory string

const (
	MoodExcellent  MoodCategory = "excellent"
	MoodGood       MoodCategory = "good"
	MoodModerate   MoodCategory = "moderate"
	MoodConcerning MoodCategory = "concerning"
)

// RiskLevel 风险等级，仅用于资源推荐
// 注意：阈值和 Categorize 不一致（70/40 vs 80/60/40），两套判定各自独立
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

var (
	ErrIncompleteAnswers = errors.New("all five questions must be answered")
	ErrAnswerOutOfRange  = errors.New("answer value must be between 1 and 5")
)

// negativeQuestions q2/q3 是反向计分题（分值越低越好），计分时取 6-v
var negativeQuestions = map[string]bool{
	"q2": true,
	"q3": true,
}

// ComputeScore 将一组完整的答案归一化为 [0,100] 分数
// q1/q4/q5 按原值计分，q2/q3 反向计分，总分 5-25 再乘 100/25
func ComputeScore(answers map[string]int) (float64, error) {
	total := 0
	for _, id := range QuestionIDs {
		v, ok := answers[id]
		if !ok {
			return 0, ErrIncompleteAnswers
		}
		if v < 1 || v > 5 {
			return 0, ErrAnswerOutOfRange
		}
		if negativeQuestions[id] {
			total += 6 - v
		} else {
			total += v
		}
	}
	return float64(total) / 25 * 100, nil
}

// Categorize 分数到情绪分类的映射，边界值包含在高档位
func Categorize(score float64) MoodCategory {
	switch {
	case score >= 80:
		return MoodExcellent
	case score >= 60:
		return MoodGood
	case score >= 40:
		return MoodModerate
	default:
		return MoodConcerning
	}
}

// AssessRisk 分数到风险等级的映射，驱动资源推荐
func AssessRisk(score float64) RiskLevel {
	switch {
	case score >= 70:
		return RiskLow
	case score >= 40:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// ColorClass 情绪分类对应的前端展示色，未知分类回退灰色
func ColorClass(category MoodCategory) string {
	switch category {
	case MoodExcellent:
		return "bg-green-100 text-green-800 border-green-200"
	case MoodGood:
		return "bg-blue-100 text-blue-800 border-blue-200"
	case MoodModerate:
		return "bg-yellow-100 text-yellow-800 border-yellow-200"
	case MoodConcerning:
		return "bg-red-100 text-red-800 border-red-200"
	default:
		return "bg-gray-100 text-gray-800 border-gray-200"
	}
}
