package oracle

import (
	"strings"

	"github.com/pkg/errors"
)

// Answer is the answer to life, the universe and everything.
const Answer = 42

// ErrShallowQuestion is returned for questions that do not mention life.
var ErrShallowQuestion = errors.New("Question not deep enough")

// MeaningOfLife evaluates an existential question. Questions containing
// "life" in any letter case earn the Answer; anything else is rejected
// with ErrShallowQuestion.
func MeaningOfLife(question string) (int, error) {
	if strings.Contains(strings.ToLower(question), "life") {
		return Answer, nil
	}
	return 0, ErrShallowQuestion
}
