package domain

import "errors"

// EmptyQuestionAlert is shown to the user when a spin is requested without a question.
const EmptyQuestionAlert = "Please ask a question first!"

var (
	ErrEmptyQuestion        = errors.New("question is empty")
	ErrSpinInProgress       = errors.New("a spin is already in progress")
	ErrConfirmationRequired = errors.New("clearing history requires confirmation")
	ErrInvalidOptionSet     = errors.New("invalid option set")
	ErrUpstreamLLM          = errors.New("upstream LLM failure")
	ErrInvalidLLMJSON       = errors.New("LLM returned invalid JSON after retry")
)
