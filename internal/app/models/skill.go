package models

// Skill defines the skill model based on the 'skills' table
type Skill struct {
	ID              int64  `json:"id" db:"id"`
	StudentEmail    string `json:"studentEmail" db:"student_email"`
	SkillName       string `json:"skillName" db:"skill_name"`
	LevelsCompleted int    `json:"levelsCompleted" db:"levels_completed"` // 0..10
}

// Achievement defines the achievement model based on the 'achievements' table
type Achievement struct {
	ID           int64  `json:"id" db:"id"`
	StudentEmail string `json:"studentEmail" db:"student_email"`
	Title        string `json:"title" db:"title"`
	Level        string `json:"level" db:"level"`
	DateStr      string `json:"dateStr" db:"date_str"` // Free text, not parsed
	Description  string `json:"description" db:"description"`
}

// Certification defines the certification model based on the 'certifications' table
type Certification struct {
	ID            int64  `json:"id" db:"id"`
	StudentEmail  string `json:"studentEmail" db:"student_email"`
	Name          string `json:"name" db:"name"`
	Provider      string `json:"provider" db:"provider"`
	IssueDate     string `json:"issueDate" db:"issue_date"`
	CredentialURL string `json:"credentialUrl" db:"credential_url"`
}
