package scoring

import "testing"

func completeAnswers(v int) map[string]int {
	return map[string]int{"q1": v, "q2": v, "q3": v, "q4": v, "q5": v}
}

func TestComputeScore_Vectors(t *testing.T) {
	tests := []struct {
		name    string
		answers map[string]int
		want    float64
	}{
		{"best possible", map[string]int{"q1": 5, "q2": 1, "q3": 1, "q4": 5, "q5": 5}, 100},
		{"worst possible", map[string]int{"q1": 1, "q2": 5, "q3": 5, "q4": 1, "q5": 1}, 20},
		{"all neutral", completeAnswers(3), 60},
	}

	for _, tc := range tests {
		got, err := ComputeScore(tc.answers)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: ComputeScore = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestComputeScore_Bounds(t *testing.T) {
	// 穷举不现实，抽样覆盖全部单题取值组合的边角
	for v1 := 1; v1 <= 5; v1++ {
		for v2 := 1; v2 <= 5; v2++ {
			answers := map[string]int{"q1": v1, "q2": v2, "q3": 3, "q4": 3, "q5": 3}
			got, err := ComputeScore(answers)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got < 0 || got > 100 {
				t.Errorf("ComputeScore(%v) = %v, out of [0,100]", answers, got)
			}
		}
	}
}

func TestComputeScore_Incomplete(t *testing.T) {
	answers := map[string]int{"q1": 3, "q2": 3, "q3": 3, "q4": 3}
	if _, err := ComputeScore(answers); err != ErrIncompleteAnswers {
		t.Errorf("ComputeScore with 4 answers: err = %v, want ErrIncompleteAnswers", err)
	}
}

func TestComputeScore_OutOfRange(t *testing.T) {
	for _, v := range []int{0, 6, -1} {
		answers := completeAnswers(3)
		answers["q1"] = v
		if _, err := ComputeScore(answers); err != ErrAnswerOutOfRange {
			t.Errorf("ComputeScore with q1=%d: err = %v, want ErrAnswerOutOfRange", v, err)
		}
	}
}

func TestCategorize_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  MoodCategory
	}{
		{100, MoodExcellent},
		{80, MoodExcellent},
		{79.999, MoodGood},
		{60, MoodGood},
		{59.999, MoodModerate},
		{40, MoodModerate},
		{39.999, MoodConcerning},
		{0, MoodConcerning},
	}

	for _, tc := range tests {
		if got := Categorize(tc.score); got != tc.want {
			t.Errorf("Categorize(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestAssessRisk_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskLevel
	}{
		{100, RiskLow},
		{70, RiskLow},
		{69.999, RiskModerate},
		{40, RiskModerate},
		{39.999, RiskHigh},
		{0, RiskHigh},
	}

	for _, tc := range tests {
		if got := AssessRisk(tc.score); got != tc.want {
			t.Errorf("AssessRisk(%v) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestQuestionText(t *testing.T) {
	if got := QuestionText("q1"); got != "I feel calm and in control." {
		t.Errorf("QuestionText(q1) = %q", got)
	}
	if got := QuestionText("q99"); got != "Unknown question" {
		t.Errorf("QuestionText(q99) = %q, want placeholder", got)
	}
}

func TestColorClass_Fallback(t *testing.T) {
	if got := ColorClass(MoodCategory("bogus")); got != "bg-gray-100 text-gray-800 border-gray-200" {
		t.Errorf("ColorClass(bogus) = %q, want gray fallback", got)
	}
	if got := ColorClass(MoodExcellent); got != "bg-green-100 text-green-800 border-green-200" {
		t.Errorf("ColorClass(excellent) = %q", got)
	}
}
