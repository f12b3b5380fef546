package model

type FretPress struct {
	String int `json:"string"`
	Fret   int `json:"fret"`
}

type OptionsBody struct {
	Strictness      string `json:"strictness"`
	MaxCandidates   int    `json:"max_candidates"`
	MinNotes        int    `json:"min_notes"`
	AllowInversions bool   `json:"allow_inversions"`
}

type DetectRequestBody struct {
	Notes   Notes        `json:"notes"`
	Frets   []FretPress  `json:"frets"`
	Options *OptionsBody `json:"options"`
}

type CandidateResult struct {
	Name           string         `json:"name"`
	Root           string         `json:"root"`
	Score          int            `json:"score"`
	Matched        []string       `json:"matched"`
	Missing        []string       `json:"missing"`
	Extra          []string       `json:"extra"`
	AlternateNames []string       `json:"alternate_names,omitempty"`
	Metadata       *ChordMetadata `json:"metadata,omitempty"`
}

type DetectResponse struct {
	RequestId    string            `json:"request_id"`
	PitchClasses []string          `json:"pitch_classes"`
	Candidates   []CandidateResult `json:"candidates"`
}

type TemplateResult struct {
	Name      string `json:"name"`
	Intervals []int  `json:"intervals"`
	Weight    int    `json:"weight"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
