package services

import (
	"errors"
	"time"

	"edubridge/backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certificate eligibility threshold, as a completion percentage.
const certificateThreshold = 80

// ProgressService is the per-(student, course) completion ledger.
type ProgressService struct {
	DB *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{DB: db}
}

// Get loads the progress record for a (student, course) pair.
func (s *ProgressService) Get(studentID, courseID uint) (*models.Progress, error) {
	var progress models.Progress
	err := s.DB.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgressNotFound
		}
		return nil, persistenceError("load progress", err)
	}
	return &progress, nil
}

// CompleteLesson marks a lesson as completed and recomputes the overall
// percentage. Re-marking an already-completed lesson is a no-op that still
// succeeds.
func (s *ProgressService) CompleteLesson(studentID, courseID uint, lessonIndex int) (*models.Progress, error) {
	progress, err := s.Get(studentID, courseID)
	if err != nil {
		return nil, err
	}

	var course models.Course
	if err := s.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, persistenceError("load course", err)
	}

	lessons := course.LessonList()
	if lessonIndex < 0 || lessonIndex >= len(lessons) {
		return nil, ErrLessonOutOfRange
	}

	if !progress.HasCompletedLesson(lessonIndex) {
		completed := append(progress.CompletedLessonIndexes(), lessonIndex)
		progress.SetCompletedLessonIndexes(completed)
		progress.OverallProgress = float64(len(completed)) / float64(len(lessons)) * 100
		progress.LastAccessed = time.Now()

		if err := s.DB.Save(progress).Error; err != nil {
			return nil, persistenceError("save progress", err)
		}
	}

	return progress, nil
}

// RecordQuizScore appends a quiz submission. Repeated submissions for the
// same quiz index accumulate; there is no upsert. Certificate eligibility is
// re-evaluated here but is driven by lesson completion percentage, not the
// quiz result.
func (s *ProgressService) RecordQuizScore(studentID, courseID uint, quizIndex, score, maxScore int) (*models.Progress, error) {
	progress, err := s.Get(studentID, courseID)
	if err != nil {
		return nil, err
	}

	progress.AppendQuizScore(models.QuizScore{
		QuizIndex:   quizIndex,
		Score:       score,
		MaxScore:    maxScore,
		CompletedAt: time.Now(),
	})

	// One-way transition: once issued, the flag and number never change.
	if progress.OverallProgress >= certificateThreshold && !progress.CertificateIssued {
		progress.CertificateIssued = true
		progress.CertificateNumber = uuid.NewString()
	}

	if err := s.DB.Save(progress).Error; err != nil {
		return nil, persistenceError("save progress", err)
	}

	return progress, nil
}
