package models

// Suspect is one row of GET /cases/{id}/suspects.
type Suspect struct {
	ID               string  `json:"id"`
	SuspectID        string  `json:"suspectId"`
	FullName         string  `json:"fullName"`
	Alias            *string `json:"alias"`
	Age              int     `json:"age"`
	PortraitImageURL *string `json:"portraitImageUrl"`
	IsCleared        bool    `json:"isCleared"`
	IsPrimarySuspect bool    `json:"isPrimarySuspect"`
	DangerLevel      string  `json:"dangerLevel"`
}

// SuspectDetail is the full dossier from GET /suspects/{id}.
type SuspectDetail struct {
	ID               string           `json:"id"`
	SuspectID        string           `json:"suspectId"`
	BasicInfo        BasicInfo        `json:"basicInfo"`
	Appearance       Appearance       `json:"physicalAppearance"`
	BehaviorProfile  BehaviorProfile  `json:"behaviorProfile"`
	CaseRelation     CaseRelation     `json:"caseRelation"`
	BackgroundInfo   BackgroundInfo   `json:"backgroundInfo"`
	DigitalFootprint DigitalFootprint `json:"digitalFootprint"`
	Assets           Assets           `json:"assets"`
	RiskAssessment   RiskAssessment   `json:"riskAssessment"`
	IsCleared        bool             `json:"isCleared"`
	IsPrimarySuspect bool             `json:"isPrimarySuspect"`
}

type BasicInfo struct {
	FullName          string  `json:"fullName"`
	Alias             *string `json:"alias"`
	Gender            string  `json:"gender"`
	Age               int     `json:"age"`
	BirthDate         *string `json:"birthDate"`
	Nationality       string  `json:"nationality"`
	ResidenceCity     string  `json:"residenceCity"`
	ResidenceDistrict string  `json:"residenceDistrict"`
	Occupation        string  `json:"occupation"`
	MaritalStatus     string  `json:"maritalStatus"`
	PortraitImageURL  *string `json:"portraitImageUrl"`
}

type Appearance struct {
	HeightCm            *int     `json:"heightCm"`
	WeightKg            *int     `json:"weightKg"`
	HairColor           string   `json:"hairColor"`
	HairStyle           string   `json:"hairStyle"`
	SkinColor           string   `json:"skinColor"`
	DistinctiveFeatures []string `json:"distinctiveFeatures"`
	VoiceDescription    string   `json:"voiceDescription"`
	TypicalClothing     string   `json:"typicalClothing"`
}

type BehaviorProfile struct {
	PersonalityTraits  []string `json:"personalityTraits"`
	Habits             []string `json:"habits"`
	Interests          []string `json:"interests"`
	PsychologicalNotes string   `json:"psychologicalNotes"`
	ModusOperandi      string   `json:"modusOperandi"`
}

type CaseRelation struct {
	LastSeenDateTime       *string  `json:"lastSeenDateTime"`
	RelationToVictim       string   `json:"relationToVictim"`
	IndirectEvidence       []string `json:"indirectEvidence"`
	AlibiStatus            string   `json:"alibiStatus"`
	AlibiStatement         string   `json:"alibiStatement"`
	AlibiVerificationNotes string   `json:"alibiVerificationNotes"`
	Suspicions             []string `json:"suspicions"`
	RelatedItems           []string `json:"relatedItems"`
}

type BackgroundInfo struct {
	FinancialStress  string   `json:"financialStress"`
	SocialConflicts  []string `json:"socialConflicts"`
	ResidenceHistory []string `json:"residenceHistory"`
	BackgroundNotes  string   `json:"backgroundNotes"`
}

type DigitalFootprint struct {
	SocialMediaStatus            map[string]string `json:"socialMediaStatus"`
	TypicalOnlineHours           string            `json:"typicalOnlineHours"`
	RecentInteractionsWithVictim []string          `json:"recentInteractionsWithVictim"`
	Devices                      []string          `json:"devices"`
	LocationClues                string            `json:"locationClues"`
}

type Assets struct {
	Vehicles      []string `json:"vehicles"`
	PersonalItems []string `json:"personalItems"`
}

type RiskAssessment struct {
	DangerLevel         string `json:"dangerLevel"`
	CooperationLevel    string `json:"cooperationLevel"`
	FlightRisk          string `json:"flightRisk"`
	RiskAssessmentNotes string `json:"riskAssessmentNotes"`
}
