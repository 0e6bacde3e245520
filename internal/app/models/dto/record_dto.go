package dto

// AddSkillRequest carries a skill form. LevelsCompleted is a raw string and
// is clamped to [0,10] by the service.
type AddSkillRequest struct {
	SkillName       string `json:"skillName"`
	LevelsCompleted string `json:"levelsCompleted" example:"5"`
}

// AddAchievementRequest carries an achievement form. Only the title is
// required; the date is stored as free text.
type AddAchievementRequest struct {
	Title       string `json:"title"`
	Level       string `json:"level"`
	DateStr     string `json:"dateStr"`
	Description string `json:"description"`
}

// AddCertificationRequest carries a certification form. Only the name is
// required.
type AddCertificationRequest struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"`
	IssueDate     string `json:"issueDate"`
	CredentialURL string `json:"credentialUrl"`
}
