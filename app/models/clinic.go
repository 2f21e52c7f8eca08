package models

// Doctor and Patient are profile rows linked one-to-one to a User.
// The role match (a Doctor row belongs to a DOCTOR user) is a service-layer
// invariant, not a schema constraint.

type Doctor struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	UserID       uint          `gorm:"uniqueIndex;not null" json:"userId"`
	Specialty    string        `gorm:"size:191;not null" json:"specialty"`
	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

type Patient struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	UserID       uint          `gorm:"uniqueIndex;not null" json:"userId"`
	Phone        string        `gorm:"size:32" json:"phone,omitempty"`
	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}
