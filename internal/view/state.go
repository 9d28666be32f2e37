package view

import "github.com/van-is-code/portfolio/internal/content"

// State is the UI state owned by the App. It only changes through the
// transition methods below.
type State struct {
	Language  content.Language `json:"lang"`
	CVVisible bool             `json:"cvVisible"`
}

// NewState returns the initial state for lang with the overlay closed.
func NewState(lang content.Language) State {
	return State{Language: content.ParseLanguage(string(lang))}
}

func (s State) WithLanguage(lang content.Language) State {
	s.Language = content.ParseLanguage(string(lang))
	return s
}

func (s State) OpenCV() State {
	s.CVVisible = true
	return s
}

func (s State) CloseCV() State {
	s.CVVisible = false
	return s
}
