// Package models defines the data shapes exchanged with the detective case
// backend. Every endpoint has an explicit tagged struct; nothing travels as
// an untyped blob.
package models

// CaseListItem is one row of GET /api/cases.
type CaseListItem struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	DifficultyLevel string  `json:"difficultyLevel"`
	ImageURL        *string `json:"imageUrl"`
	IsSolved        bool    `json:"isSolved"`
}

// Clue is a single piece of evidence; locked clues carry no content until
// unlocked via POST /clues/{id}/unlock.
type Clue struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	UnlockCost int     `json:"unlockCost"`
	ImageURL   *string `json:"imageUrl"`
	IsUnlocked bool    `json:"isUnlocked"`
}

// Solution is revealed only after the case has been solved.
type Solution struct {
	CorrectAnswer       string `json:"correctAnswer"`
	DetailedExplanation string `json:"detailedExplanation"`
}

// CaseDetail is GET /cases/{id}: the narrative plus the caller's view of the
// clue board and point balance.
type CaseDetail struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	FullNarrative   string    `json:"fullNarrative"`
	DifficultyLevel string    `json:"difficultyLevel"`
	ImageURL        *string   `json:"imageUrl"`
	Clues           []Clue    `json:"clues"`
	UserPoints      int       `json:"userPoints"`
	CluesFoundCount int       `json:"cluesFoundCount"`
	HasBeenSolved   bool      `json:"hasBeenSolved"`
	Solution        *Solution `json:"solution,omitempty"`
}

// CaseProgress is GET /cases/{id}/progress.
type CaseProgress struct {
	UnlockedCluesCount  int      `json:"unlockedCluesCount"`
	ViewedSuspectsCount int      `json:"viewedSuspectsCount"`
	ViewedEvidenceCount int      `json:"viewedEvidenceCount"`
	IsSaved             bool     `json:"isSaved"`
	LastSavedAt         *string  `json:"lastSavedAt"`
	TotalSuspects       int      `json:"totalSuspects"`
	TotalEvidence       int      `json:"totalEvidence"`
	UnlockedClueIDs     []string `json:"unlockedClueIds"`
	ViewedSuspectIDs    []string `json:"viewedSuspectIds"`
	ViewedEvidenceIDs   []string `json:"viewedEvidenceIds"`
}

// SaveProgressRequest is POST /cases/{id}/save-progress.
type SaveProgressRequest struct {
	ProgressData string  `json:"progressData"`
	NotesData    *string `json:"notesData"`
}

type SaveProgressResponse struct {
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message"`
	SavedAt   string `json:"savedAt"`
}

// SubmitAnswerRequest is the free-text accusation, POST /cases/submit.
type SubmitAnswerRequest struct {
	CaseID          string `json:"caseId"`
	SubmittedAnswer string `json:"submittedAnswer"`
}

type SubmitAnswerResponse struct {
	IsCorrect        bool    `json:"isCorrect"`
	ScoreEarned      int     `json:"scoreEarned"`
	Message          string  `json:"message"`
	DetailedSolution *string `json:"detailedSolution"`
}

// SubmitInferenceRequest is the structured accusation,
// POST /cases/{id}/submit-inference.
type SubmitInferenceRequest struct {
	SuspectedPerpetrator  string  `json:"suspectedPerpetrator"`
	PerpetrationReasoning string  `json:"perpetrationReasoning"`
	AliasUsed             *string `json:"aliasUsed"`
	AdditionalNotes       *string `json:"additionalNotes"`
}

type SubmitInferenceResponse struct {
	ID                    string   `json:"id"`
	SuspectedPerpetrator  string   `json:"suspectedPerpetrator"`
	PerpetrationReasoning string   `json:"perpetrationReasoning"`
	RelatedEvidence       []string `json:"relatedEvidence"`
	AliasUsed             string   `json:"aliasUsed"`
	AdditionalNotes       string   `json:"additionalNotes"`
	SubmittedAt           string   `json:"submittedAt"`
	InferenceStatus       string   `json:"inferenceStatus"`
	IsCorrect             bool     `json:"isCorrect"`
	PointsEarned          int      `json:"pointsEarned"`
}

// LeaderboardEntry is one row of GET /leaderboard, ranked by solve time.
type LeaderboardEntry struct {
	CaseID      string `json:"caseId"`
	CaseTitle   string `json:"caseTitle"`
	Username    string `json:"username"`
	TimeToSolve string `json:"timeToSolve"`
}
