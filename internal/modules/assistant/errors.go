package assistant

import "errors"

var (
	ErrEmptyQuestion = errors.New("empty question")
)
