// Package prompt asks the four questions that describe a search problem and
// turns the answers into a catalogue.Requirement.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/searchadvisor/catalogue"
)

var (
	// ErrInvalidAnswer is returned in strict mode when an answer is not y/yes/n/no
	// after MaxAttempts tries.
	ErrInvalidAnswer = errors.New("prompt: answer must be y or n")

	// ErrNoInput is returned in strict mode when input ends before an answer.
	ErrNoInput = errors.New("prompt: input closed before an answer was given")
)

// QuestionID identifies one of the four questions.
type QuestionID int

const (
	Heuristic QuestionID = iota
	InfinitePaths
	LengthOptimal
	CostOptimal
)

// Question is a yes/no question with its prompt text.
type Question struct {
	ID    QuestionID
	Title string
	// Text is the full prompt, including the answer hint.
	Text string
}

// Questions returns the four questions in the order they are asked.
func Questions() []Question {
	return []Question{
		{Heuristic, "Heuristic function", "Do nodes in the search space have an associated heuristic function? (y, n)"},
		{InfinitePaths, "Infinite paths", "Does the problem search space contain infinite length paths? (y, n)"},
		{LengthOptimal, "Shortest length", "Does the problem require finding a solution with shortest length? (y, n)"},
		{CostOptimal, "Lowest cost", "If solutions have an associated cost function, does the lowest cost solution need to be found? (y/n)"},
	}
}

// Prompter asks a single yes/no question.
type Prompter interface {
	Confirm(ctx context.Context, q Question) (bool, error)
}

// Preset holds answers already known (e.g. from flags); nil means "ask".
type Preset map[QuestionID]bool

// Collect asks every question not answered by preset, in order, and builds
// the Requirement.
func Collect(ctx context.Context, p Prompter, preset Preset) (catalogue.Requirement, error) {
	answers := make(map[QuestionID]bool, 4)
	for _, q := range Questions() {
		if v, ok := preset[q.ID]; ok {
			answers[q.ID] = v
			continue
		}
		if err := ctx.Err(); err != nil {
			return catalogue.Requirement{}, err
		}
		v, err := p.Confirm(ctx, q)
		if err != nil {
			return catalogue.Requirement{}, fmt.Errorf("question %q: %w", q.Title, err)
		}
		answers[q.ID] = v
	}

	return catalogue.Requirement{
		HeuristicAvailable: answers[Heuristic],
		InfinitePaths:      answers[InfinitePaths],
		LengthOptimal:      answers[LengthOptimal],
		CostOptimal:        answers[CostOptimal],
	}, nil
}
