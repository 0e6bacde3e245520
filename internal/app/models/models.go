package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleStaff   RoleType = "staff"
)

// ScholarType classifies a student's residence
type ScholarType string

const (
	ScholarDay    ScholarType = "Day Scholar"
	ScholarHostel ScholarType = "Hosteller"
)

// SemesterCount is the number of tracked semester score slots per student.
const SemesterCount = 8
