package services

import (
	"errors"

	"edubridge/backend/models"

	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalCourses     int `json:"totalCourses"`
	CompletedCourses int `json:"completedCourses"`
	Certificates     int `json:"certificates"`
}

type Dashboard struct {
	EnrolledCourses []models.Course   `json:"enrolledCourses"`
	ProgressData    []models.Progress `json:"progressData"`
	Stats           DashboardStats    `json:"stats"`
}

// DashboardService is a read-only projection over courses and progress.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// GetDashboard combines the student's enrolled courses with their progress
// records. An enrolled course with no progress record counts toward
// totalCourses but contributes nothing to the completion or certificate
// counts.
func (s *DashboardService) GetDashboard(studentID uint) (*Dashboard, error) {
	var student models.User
	if err := s.DB.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, persistenceError("load student", err)
	}

	courses := []models.Course{}
	if courseIDs := student.EnrolledCourseIDs(); len(courseIDs) > 0 {
		if err := s.DB.Where("id IN ?", courseIDs).Find(&courses).Error; err != nil {
			return nil, persistenceError("load courses", err)
		}
	}

	progressData := []models.Progress{}
	if err := s.DB.Where("student_id = ?", studentID).Find(&progressData).Error; err != nil {
		return nil, persistenceError("load progress", err)
	}

	stats := DashboardStats{TotalCourses: len(courses)}
	for _, p := range progressData {
		if p.OverallProgress == 100 {
			stats.CompletedCourses++
		}
		if p.CertificateIssued {
			stats.Certificates++
		}
	}

	return &Dashboard{
		EnrolledCourses: courses,
		ProgressData:    progressData,
		Stats:           stats,
	}, nil
}
