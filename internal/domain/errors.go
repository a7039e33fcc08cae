package domain

import "errors"

// Errors surfaced by boundary collaborators. The scoring engine itself
// degrades to sentinel values (nil final score, empty winner list)
// rather than failing; see the scoring package.
var (
	// ErrPresenterNotFound indicates an unknown presenter id.
	ErrPresenterNotFound = errors.New("presenter not found")

	// ErrUnknownCategory indicates an award-category id outside the
	// configured set.
	ErrUnknownCategory = errors.New("unknown award category")

	// ErrUnknownJudge indicates a judge name that matches no assigned
	// slot of the target presenter.
	ErrUnknownJudge = errors.New("judge not assigned to presenter")
)
