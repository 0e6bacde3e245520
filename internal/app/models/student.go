package models

// Student defines the student model based on the 'students' table.
// It is linked to its user account by email value; there is no enforced
// foreign key, and user_email never changes after registration.
type Student struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	UserEmail    string `json:"userEmail" db:"user_email" example:"a.student@gmail.com"`
	StudentID    string `json:"studentId" db:"student_id" example:"22CS118"`
	Roll         string `json:"roll" db:"roll" example:"718822IT045"`
	Name         string `json:"name" db:"name" example:"Aarav Kumar"`
	ContactEmail string `json:"contactEmail" db:"contact_email"`

	Phone       string `json:"phone" db:"phone"`
	ParentPhone string `json:"parentPhone" db:"parent_phone"`
	Address     string `json:"address" db:"address"`

	Department string `json:"department" db:"department" example:"IT"`
	MentorName string `json:"mentorName" db:"mentor_name"`

	// Warden and room are required for Hostellers and forced empty for
	// Day Scholars.
	ScholarType ScholarType `json:"scholarType" db:"scholar_type" example:"Day Scholar"`
	WardenName  string      `json:"wardenName" db:"warden_name"`
	RoomNo      string      `json:"roomNo" db:"room_no"`

	Tenth   string `json:"tenth" db:"tenth"`
	Twelfth string `json:"twelfth" db:"twelfth"`

	SemesterStart string `json:"semesterStart" db:"semester_start" example:"2026-01-01"`
	PresentDays   int    `json:"presentDays" db:"present_days"`
	ArrearCount   int    `json:"arrearCount" db:"arrear_count"`

	// sem1..sem8 scores, nil when not yet entered.
	Semesters [SemesterCount]*float64 `json:"semesters"`

	// Derived score, refreshed after every relevant mutation and served
	// from this cached value on reads.
	PlacementScore float64 `json:"placementScore" db:"placement_score" example:"38.00"`
}
