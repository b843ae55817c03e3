package ports

import "context"

// AdviceInput holds everything an advisor needs to comment on a spin.
type AdviceInput struct {
	Question string
	Result   string
	Options  []string
	Advice   string
}

// AdviceOutput is the structured advice returned by an advisor.
type AdviceOutput struct {
	Text  string `json:"text"`
	Style string `json:"style"`
	Model string `json:"-"`
}

// Advisor turns a resolved outcome into the message shown with it.
type Advisor interface {
	Advise(ctx context.Context, in AdviceInput) (AdviceOutput, error)
}
