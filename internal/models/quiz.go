package models

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// OptionCount is how many answer options each quiz round offers.
const OptionCount = 4

// MinEligible is the minimum number of slots with sound files a quiz
// needs; it must cover one correct answer plus the wrong options.
const MinEligible = OptionCount

// QuizSession is the mutex-guarded state of one quiz run. A session
// cycles idle -> active, and within a round playing -> waiting (answer
// window open) -> feedback, until all rounds are used or it is aborted.
type QuizSession struct {
	mu       sync.RWMutex
	rng      *rand.Rand
	active   bool
	waiting  bool
	sequence []string
	options  []string
	index    int
	score    int
}

func NewQuizSession() *QuizSession {
	return &QuizSession{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededQuizSession fixes the random source; used by tests.
func NewSeededQuizSession(seed int64) *QuizSession {
	return &QuizSession{rng: rand.New(rand.NewSource(seed))}
}

// Start samples a question sequence of up to rounds distinct keys from
// the eligible slots and activates the session.
func (q *QuizSession) Start(eligible []string, rounds int) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.active {
		return fmt.Errorf("quiz already active")
	}
	if len(eligible) < MinEligible {
		return fmt.Errorf("quiz needs at least %d slots with sounds, have %d", MinEligible, len(eligible))
	}
	if rounds > len(eligible) {
		rounds = len(eligible)
	}

	shuffled := append([]string{}, eligible...)
	q.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	q.active = true
	q.waiting = false
	q.sequence = shuffled[:rounds]
	q.options = nil
	q.index = 0
	q.score = 0
	return nil
}

// BeginRound picks the answer options for the current question: the
// correct slot plus wrong options drawn from all slot keys, shuffled.
// It returns the correct key and the options.
func (q *QuizSession) BeginRound(allKeys []string) (string, []string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	correct := q.sequence[q.index]

	others := make([]string, 0, len(allKeys))
	for _, k := range allKeys {
		if k != correct {
			others = append(others, k)
		}
	}
	q.rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	options := append([]string{correct}, others[:OptionCount-1]...)
	q.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	q.options = options
	q.waiting = false
	return correct, append([]string{}, options...)
}

// Answer scores key against the current question and closes the answer
// window. It reports whether the answer was correct.
func (q *QuizSession) Answer(key string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.waiting = false
	if key == q.sequence[q.index] {
		q.score++
		return true
	}
	return false
}

// Advance moves to the next question. It reports false when the session
// ran out of questions, in which case it stays active until Reset.
func (q *QuizSession) Advance() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.index++
	return q.index < len(q.sequence)
}

// Reset returns the session to idle, clearing all round state.
func (q *QuizSession) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.active = false
	q.waiting = false
	q.sequence = nil
	q.options = nil
	q.index = 0
	q.score = 0
}

// SetWaiting opens or closes the answer window.
func (q *QuizSession) SetWaiting(waiting bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.waiting = waiting
}

// Active reports whether a quiz run is in progress.
func (q *QuizSession) Active() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.active
}

// Waiting reports whether the answer window is open.
func (q *QuizSession) Waiting() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.waiting
}

// CurrentKey returns the correct answer for the current question.
func (q *QuizSession) CurrentKey() string {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.sequence[q.index]
}

// Options returns the answer options of the current round.
func (q *QuizSession) Options() []string {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return append([]string{}, q.options...)
}

// IsOption reports whether key is among the current round's options.
func (q *QuizSession) IsOption(key string) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	for _, k := range q.options {
		if k == key {
			return true
		}
	}
	return false
}

// QuestionNumber returns the 1-based number of the current question.
func (q *QuizSession) QuestionNumber() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.index + 1
}

// Rounds returns the total question count of this run.
func (q *QuizSession) Rounds() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.sequence)
}

// Score returns the number of correct answers so far.
func (q *QuizSession) Score() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.score
}
