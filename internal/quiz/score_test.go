package quiz

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		numCorrect int
		want       int
	}{
		{"zero correct", 0, 0},
		{"one correct", 1, 20},
		{"three correct", 3, 60},
		{"perfect ten", 10, 200},
		{"negative is clamped", -2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.numCorrect); got != tt.want {
				t.Errorf("Score(%d) = %d, want %d", tt.numCorrect, got, tt.want)
			}
		})
	}
}

func TestGrade(t *testing.T) {
	questions := []Question{
		{Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
		{Question: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
		{Question: "Q3", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3},
	}

	tests := []struct {
		name    string
		answers []int
		want    int
	}{
		{"all correct", []int{0, 2, 3}, 3},
		{"one wrong", []int{0, 1, 3}, 2},
		{"all wrong", []int{1, 0, 0}, 0},
		{"short answer list", []int{0}, 1},
		{"out-of-range pick is wrong", []int{0, 2, 9}, 2},
		{"no answers", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Grade(questions, tt.answers); got != tt.want {
				t.Errorf("Grade = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClampCount(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultQuestionCount},
		{-1, DefaultQuestionCount},
		{1, 1},
		{5, 5},
		{10, 10},
		{11, MaxQuestionCount},
		{100, MaxQuestionCount},
	}
	for _, tt := range tests {
		if got := clampCount(tt.in); got != tt.want {
			t.Errorf("clampCount(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
