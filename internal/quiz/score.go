package quiz

// PointsPerCorrect is the XP awarded for each correct answer.
const PointsPerCorrect = 20

// Score returns the XP earned for a completed quiz. Each correct
// answer is worth PointsPerCorrect; there is no bonus and no penalty.
func Score(numCorrect int) int {
	if numCorrect <= 0 {
		return 0
	}
	return numCorrect * PointsPerCorrect
}

// Grade counts correct answers. answers[i] is the option the student
// picked for questions[i]; missing or out-of-range picks count as
// wrong.
func Grade(questions []Question, answers []int) int {
	correct := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == q.CorrectIndex {
			correct++
		}
	}
	return correct
}
