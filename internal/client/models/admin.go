package models

// CaseUpsertRequest is the admin create/update body for
// POST/PUT /admin/cases[/{id}]. Every field is explicit; unknown fields in
// stored drafts are rejected at the boundary (see api.DecodeCaseDraft).
type CaseUpsertRequest struct {
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	FullNarrative   string         `json:"fullNarrative"`
	DifficultyLevel string         `json:"difficultyLevel"`
	ImageURL        string         `json:"imageUrl"`
	Solution        Solution       `json:"solution"`
	Suspects        []SuspectDraft `json:"suspects"`
	Clues           []ClueDraft    `json:"clues"`
}

// SuspectDraft is the admin-authored suspect payload.
type SuspectDraft struct {
	ID               string `json:"id,omitempty"`
	FullName         string `json:"fullName"`
	Alias            string `json:"alias"`
	Gender           string `json:"gender"`
	Age              int    `json:"age"`
	PortraitImageURL string `json:"portraitImageUrl"`
	Occupation       string `json:"occupation"`
	IsPrimarySuspect bool   `json:"isPrimarySuspect"`
}

// ClueDraft is the admin-authored clue payload.
type ClueDraft struct {
	ID         string `json:"id,omitempty"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	UnlockCost int    `json:"unlockCost"`
	ImageURL   string `json:"imageUrl"`
}
