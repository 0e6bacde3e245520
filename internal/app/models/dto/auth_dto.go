package dto

// LoginRequest carries the login form fields. Role selects which account
// namespace the email is looked up in.
type LoginRequest struct {
	Role     string `json:"role" example:"student"`
	Email    string `json:"email" example:"a.student@gmail.com"`
	Password string `json:"password"`
}

// TokenResponse returns the issued access token.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn" example:"43200"`
	Role      string `json:"role" example:"student"`
	Email     string `json:"email"`
}

// RegisterStaffRequest carries the staff registration form.
type RegisterStaffRequest struct {
	Email    string `json:"email" example:"a.staff@gmail.com"`
	Password string `json:"password"`
}

// RegisterStudentRequest carries the full student registration form.
// Numeric and date fields arrive as raw strings exactly as typed into the
// form; the service parses them with the forms helpers.
type RegisterStudentRequest struct {
	LoginEmail    string `json:"loginEmail" example:"a.student@gmail.com"`
	LoginPassword string `json:"loginPassword"`

	StudentID    string `json:"studentId"`
	Roll         string `json:"roll"`
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`

	Phone       string `json:"phone"`
	ParentPhone string `json:"parentPhone"`
	Address     string `json:"address"`

	Department string `json:"department"`
	MentorName string `json:"mentorName"`

	ScholarType string `json:"scholarType" example:"Day Scholar"`
	WardenName  string `json:"wardenName"`
	RoomNo      string `json:"roomNo"`

	Tenth   string `json:"tenth"`
	Twelfth string `json:"twelfth"`

	SemesterStart string `json:"semesterStart" example:"2026-01-01"`
	PresentDays   string `json:"presentDays" example:"42"`
	ArrearCount   string `json:"arrearCount" example:"0"`

	// Up to eight semester scores; empty strings mean not yet entered.
	Semesters []string `json:"semesters"`
}
