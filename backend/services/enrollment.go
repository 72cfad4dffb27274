package services

import (
	"errors"
	"time"

	"edubridge/backend/models"

	"gorm.io/gorm"
)

// EnrollmentService links students to courses and creates the initial
// progress record.
type EnrollmentService struct {
	DB *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{DB: db}
}

// Enroll adds the student to the course roster, mirrors the course onto the
// student's enrolled list, and creates an empty progress record.
//
// The three writes are sequential, not atomic. The progress record is
// created last: a failure partway through leaves an "enrolled but no
// progress" state, which the dashboard treats as zero progress. Partial
// effects are not rolled back.
func (s *EnrollmentService) Enroll(studentID, courseID uint) (*models.Course, error) {
	var course models.Course
	if err := s.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, persistenceError("load course", err)
	}

	if course.IsEnrolled(studentID) {
		return nil, ErrAlreadyEnrolled
	}

	var student models.User
	if err := s.DB.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, persistenceError("load student", err)
	}

	course.SetEnrolledStudentIDs(append(course.EnrolledStudentIDs(), studentID))
	if err := s.DB.Save(&course).Error; err != nil {
		return nil, persistenceError("save course", err)
	}

	student.SetEnrolledCourseIDs(append(student.EnrolledCourseIDs(), courseID))
	if err := s.DB.Save(&student).Error; err != nil {
		return nil, persistenceError("save student", err)
	}

	progress := models.Progress{
		StudentID:    studentID,
		CourseID:     courseID,
		LastAccessed: time.Now(),
	}
	progress.SetCompletedLessonIndexes(nil)
	if err := s.DB.Create(&progress).Error; err != nil {
		return nil, persistenceError("create progress", err)
	}

	return &course, nil
}
