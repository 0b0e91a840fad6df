package submissionhandler

import (
	"strings"

	dbmodels "skill-hire-backend/models/db"
)

// ComputeScore sums the scores of questions answered with their correct answer.
// answers[i] belongs to questions[i], questions without a correct answer never score.
func ComputeScore(questions []dbmodels.Question, answers []string) int {
	score := 0
	for idx, question := range questions {
		if idx >= len(answers) {
			break
		}
		correct := strings.TrimSpace(question.CorrectAnswer)
		if correct != "" && strings.TrimSpace(answers[idx]) == correct {
			score += question.Score
		}
	}
	return score
}
