package events

import "math/rand"

// Quiz multipliers applied to the player's dollars after a Pepe encounter.
const (
	QuizRewardMultiplier  = 1.5
	QuizPenaltyMultiplier = 0.5
	QuizNeutralMultiplier = 1.0
)

// pepeOdds is the 1-in-N chance of Pepe appearing after a turn.
const pepeOdds = 20

// Question is one quiz entry with its expected numeric answer.
type Question struct {
	Text   string
	Answer float64
}

var questions = []Question{
	{"How much does an RTX 2080 cost?", 6000},
	{"How much does an RTX 3070 cost?", 50000},
	{"How much does an RTX 3090 cost?", 100000},
	{"How much does the [#] trophy cost?", 1000000},
	{"How much does the [!] trophy cost?", 50000000},
	{"How much dollar does C53 pool give per turn?", 75},
}

// PepeAppears rolls the 1-in-20 appearance chance.
func PepeAppears(rng *rand.Rand) bool {
	return rng.Intn(pepeOdds) == 0
}

// PickQuestion selects a quiz question. One time in three the question asks
// about the current course instead of a catalog price.
func PickQuestion(rng *rand.Rand, currentCourse float64) Question {
	if currentCourse > 0 && rng.Intn(3) == 0 {
		return Question{Text: "What was the last @ course value?", Answer: float64(int(currentCourse))}
	}
	return questions[rng.Intn(len(questions))]
}

// EvaluateAnswer returns the money multiplier earned by the answer: 1.5 for
// a correct answer, 0.5 for a wrong one.
func EvaluateAnswer(q Question, answer float64) float64 {
	if answer == q.Answer {
		return QuizRewardMultiplier
	}
	return QuizPenaltyMultiplier
}
