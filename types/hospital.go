package types

import "time"

// StaffStatus is the duty state of a staff member.
type StaffStatus string

const (
	OnDuty  StaffStatus = "on_duty"
	OffDuty StaffStatus = "off_duty"
	OnBreak StaffStatus = "break"
)

// StaffRole is the job category of a staff member.
type StaffRole string

const (
	RoleDoctor       StaffRole = "doctor"
	RoleNurse        StaffRole = "nurse"
	RoleSupportStaff StaffRole = "support_staff"
	RoleSpecialist   StaffRole = "specialist"
)

// DecisionStatus is the review state of an AI recommendation.
type DecisionStatus string

const (
	DecisionApproved DecisionStatus = "approved"
	DecisionReview   DecisionStatus = "review"
	DecisionDeclined DecisionStatus = "declined"
	DecisionPending  DecisionStatus = "pending"
)

// Staff is a hospital staff document.
type Staff struct {
	Name       string      `firestore:"name" json:"name"`
	Role       StaffRole   `firestore:"role" json:"role"`
	Department string      `firestore:"department" json:"department"`
	Status     StaffStatus `firestore:"status" json:"status"`
	Shift      string      `firestore:"shift" json:"shift"`
	Contact    string      `firestore:"contact,omitempty" json:"contact,omitempty"`
}

// InventoryItem is a stock document with the AI-recommended level
// alongside the current one.
type InventoryItem struct {
	Name                string         `firestore:"name" json:"name"`
	AvailableQuantity   int            `firestore:"availableQuantity" json:"available_quantity"`
	RecommendedQuantity int            `firestore:"recommendedQuantity" json:"ai_recommended_quantity"`
	Status              DecisionStatus `firestore:"status" json:"status"`
	Category            string         `firestore:"category" json:"category"`
	Unit                string         `firestore:"unit" json:"unit"`
	LastUpdated         time.Time      `firestore:"lastUpdated" json:"last_updated"`
}

// DecisionLog records what a hospital operator did with a
// recommendation.
type DecisionLog struct {
	ID             string         `firestore:"-" json:"id"`
	Type           string         `firestore:"type" json:"type"` // "staff" or "inventory"
	ItemName       string         `firestore:"itemName" json:"item_name"`
	Recommendation string         `firestore:"recommendation" json:"original_recommendation"`
	FinalDecision  DecisionStatus `firestore:"finalDecision" json:"final_decision"`
	Reasoning      string         `firestore:"reasoning,omitempty" json:"reasoning,omitempty"`
	UserID         string         `firestore:"userId,omitempty" json:"user_id,omitempty"`
	Timestamp      time.Time      `firestore:"timestamp" json:"timestamp"`
}

// HospitalSettings holds per-hospital thresholds and location.
type HospitalSettings struct {
	City                     string  `firestore:"city" json:"city"`
	Latitude                 float64 `firestore:"latitude" json:"latitude"`
	Longitude                float64 `firestore:"longitude" json:"longitude"`
	AQIThresholdHigh         int     `firestore:"aqiThresholdHigh" json:"aqi_threshold_high"`
	AQIThresholdMedium       int     `firestore:"aqiThresholdMedium" json:"aqi_threshold_medium"`
	TemperatureThresholdHigh int     `firestore:"temperatureThresholdHigh" json:"temperature_threshold_high"`
	TemperatureThresholdLow  int     `firestore:"temperatureThresholdLow" json:"temperature_threshold_low"`
	HospitalName             string  `firestore:"hospitalName" json:"hospital_name"`
}

// DefaultSettings is the Mumbai default used until an operator saves
// their own.
func DefaultSettings() HospitalSettings {
	return HospitalSettings{
		City:                     "Mumbai",
		Latitude:                 19.0760,
		Longitude:                72.8777,
		AQIThresholdHigh:         150,
		AQIThresholdMedium:       100,
		TemperatureThresholdHigh: 32,
		TemperatureThresholdLow:  15,
		HospitalName:             "SurgeSense Medical Center",
	}
}

// User is a login document. Credentials are stored as-is to match the
// seeded demo accounts.
type User struct {
	Name     string `firestore:"name,omitempty" json:"name,omitempty"`
	Email    string `firestore:"email" json:"email"`
	Password string `firestore:"password" json:"-"`
	Role     string `firestore:"role" json:"role"`
}
