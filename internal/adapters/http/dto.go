package http

import (
	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/app"
	"github.com/roksanalatawska-cloud/spin-wheel-game/internal/domain"
)

// SpinRequest is the body of POST /v1/spin and each message on the spin stream.
type SpinRequest struct {
	Question string `json:"question"`
}

// SpinResponse is the JSON shape of a completed spin.
type SpinResponse struct {
	Question string  `json:"question"`
	Result   string  `json:"result"`
	Index    int     `json:"index"`
	Emoji    string  `json:"emoji"`
	Advice   string  `json:"advice"`
	Rotation float64 `json:"rotation"`
}

type HistoryEntryResponse struct {
	Question  string `json:"question"`
	Result    string `json:"result"`
	Timestamp string `json:"timestamp"`
	Line      string `json:"line"`
}

type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

type ThemeResponse struct {
	Dark  bool   `json:"dark"`
	Class string `json:"class"`
	Icon  string `json:"icon"`
}

type OptionResponse struct {
	Label  string `json:"label"`
	Color  string `json:"color"`
	Emoji  string `json:"emoji"`
	Advice string `json:"advice"`
}

type StateResponse struct {
	Rotation float64          `json:"rotation"`
	Spinning bool             `json:"spinning"`
	Theme    ThemeResponse    `json:"theme"`
	Options  []OptionResponse `json:"options"`
	Last     *SpinResponse    `json:"last,omitempty"`
}

// StreamMessage is one server message on /v1/spin/stream.
// Type is "frame", "result" or "error".
type StreamMessage struct {
	Type   string        `json:"type"`
	Frame  *domain.Frame `json:"frame,omitempty"`
	Result *SpinResponse `json:"result,omitempty"`
	Error  string        `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toSpinResponse(r domain.SpinResult) SpinResponse {
	return SpinResponse{
		Question: r.Question,
		Result:   r.Label,
		Index:    r.Index,
		Emoji:    r.Emoji,
		Advice:   r.Advice,
		Rotation: r.Rotation,
	}
}

func toHistoryResponse(h domain.History, set domain.OptionSet) HistoryResponse {
	entries := make([]HistoryEntryResponse, len(h))
	for i, e := range h {
		entries[i] = HistoryEntryResponse{
			Question:  e.Question,
			Result:    e.Result,
			Timestamp: e.Timestamp,
			Line:      e.Line(set.Emoji(e.Result)),
		}
	}
	return HistoryResponse{Entries: entries}
}

func toThemeResponse(t domain.Theme) ThemeResponse {
	return ThemeResponse{Dark: t.Dark, Class: t.Class(), Icon: t.Icon()}
}

func toStateResponse(snap app.Snapshot, set domain.OptionSet) StateResponse {
	opts := make([]OptionResponse, len(set.Options))
	for i, o := range set.Options {
		opts[i] = OptionResponse{Label: o.Label, Color: set.Color(i), Emoji: o.Emoji, Advice: o.Advice}
	}
	resp := StateResponse{
		Rotation: snap.Rotation,
		Spinning: snap.Spinning,
		Theme:    toThemeResponse(snap.Theme),
		Options:  opts,
	}
	if snap.Last != nil {
		last := toSpinResponse(*snap.Last)
		resp.Last = &last
	}
	return resp
}
