package dto

import "github.com/dapi/studenttrack/internal/app/models"

// UpdateProfileRequest carries the student-editable profile fields.
type UpdateProfileRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	Phone        string `json:"phone"`
	ParentPhone  string `json:"parentPhone"`
	Address      string `json:"address"`
	Department   string `json:"department"`
	MentorName   string `json:"mentorName"`
	ScholarType  string `json:"scholarType" example:"Hosteller"`
	WardenName   string `json:"wardenName"`
	RoomNo       string `json:"roomNo"`
}

// UpdateAcademicsRequest carries the academic form. Numeric and date fields
// are raw strings; the service parses them.
type UpdateAcademicsRequest struct {
	SemesterStart string   `json:"semesterStart" example:"2026-01-01"`
	PresentDays   string   `json:"presentDays"`
	ArrearCount   string   `json:"arrearCount"`
	Semesters     []string `json:"semesters"`
}

// StaffEditRequest is the combined profile plus academics edit staff submit
// for any student.
type StaffEditRequest struct {
	UpdateProfileRequest
	SemesterStart string   `json:"semesterStart"`
	PresentDays   string   `json:"presentDays"`
	ArrearCount   string   `json:"arrearCount"`
	Semesters     []string `json:"semesters"`
}

// PortalResponse is everything one render of a student portal needs: the
// stored record, the always-recomputed attendance and CGPA figures, the
// cached placement score, and the child record lists.
type PortalResponse struct {
	Student *models.Student `json:"student"`

	TotalDays     int     `json:"totalDays"`
	PresentDays   int     `json:"presentDays"`
	AttendancePct float64 `json:"attendancePct"`

	// Nil until at least one semester score is entered.
	CGPA *float64 `json:"cgpa"`

	PlacementScore float64 `json:"placementScore"`

	Semesters [models.SemesterCount]*float64 `json:"semesters"`

	Skills         []*models.Skill         `json:"skills"`
	Achievements   []*models.Achievement   `json:"achievements"`
	Certifications []*models.Certification `json:"certifications"`
}

// DepartmentGroup is one department bucket of the staff directory.
type DepartmentGroup struct {
	Department string            `json:"department"`
	Students   []*models.Student `json:"students"`
}

// DirectoryResponse is the staff search result, grouped by department in
// ascending department order.
type DirectoryResponse struct {
	Query       string            `json:"query"`
	Departments []DepartmentGroup `json:"departments"`
}
