package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID              uint           `json:"id" gorm:"primarykey"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
	Name            string         `json:"name"`
	Email           string         `json:"email" gorm:"unique;not null"`
	Password        string         `json:"-" gorm:"not null"`
	Role            Role           `json:"role" gorm:"default:student"`
	EnrolledCourses datatypes.JSON `json:"enrolledCourses"`
	IsActive        bool           `json:"isActive" gorm:"default:true"`
}

// EnrolledCourseIDs decodes the enrolledCourses JSON column. An empty or
// missing column decodes to an empty slice.
func (u *User) EnrolledCourseIDs() []uint {
	ids := []uint{}
	if len(u.EnrolledCourses) > 0 {
		_ = json.Unmarshal(u.EnrolledCourses, &ids)
	}
	return ids
}

func (u *User) SetEnrolledCourseIDs(ids []uint) {
	if ids == nil {
		ids = []uint{}
	}
	raw, _ := json.Marshal(ids)
	u.EnrolledCourses = datatypes.JSON(raw)
}
