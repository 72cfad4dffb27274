package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizScore is one recorded quiz submission. Repeated submissions for the
// same quiz index accumulate as separate entries.
type QuizScore struct {
	QuizIndex   int       `json:"quizIndex"`
	Score       int       `json:"score"`
	MaxScore    int       `json:"maxScore"`
	CompletedAt time.Time `json:"completedAt"`
}

// Progress is the per-(student, course) completion ledger. At most one row
// exists per pair, created at enrollment time.
type Progress struct {
	ID                uint           `json:"id" gorm:"primarykey"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
	StudentID         uint           `json:"studentId" gorm:"uniqueIndex:idx_progress_student_course;not null"`
	CourseID          uint           `json:"courseId" gorm:"uniqueIndex:idx_progress_student_course;not null"`
	CompletedLessons  datatypes.JSON `json:"completedLessons"`
	QuizScores        datatypes.JSON `json:"quizScores"`
	OverallProgress   float64        `json:"overallProgress" gorm:"default:0"`
	CertificateIssued bool           `json:"certificateIssued" gorm:"default:false"`
	CertificateNumber string         `json:"certificateNumber,omitempty"`
	LastAccessed      time.Time      `json:"lastAccessed"`
}

func (p *Progress) CompletedLessonIndexes() []int {
	indexes := []int{}
	if len(p.CompletedLessons) > 0 {
		_ = json.Unmarshal(p.CompletedLessons, &indexes)
	}
	return indexes
}

func (p *Progress) SetCompletedLessonIndexes(indexes []int) {
	if indexes == nil {
		indexes = []int{}
	}
	raw, _ := json.Marshal(indexes)
	p.CompletedLessons = datatypes.JSON(raw)
}

// HasCompletedLesson reports whether the lesson index is already in the
// completed set.
func (p *Progress) HasCompletedLesson(lessonIndex int) bool {
	for _, idx := range p.CompletedLessonIndexes() {
		if idx == lessonIndex {
			return true
		}
	}
	return false
}

func (p *Progress) QuizScoreList() []QuizScore {
	scores := []QuizScore{}
	if len(p.QuizScores) > 0 {
		_ = json.Unmarshal(p.QuizScores, &scores)
	}
	return scores
}

func (p *Progress) AppendQuizScore(score QuizScore) {
	scores := append(p.QuizScoreList(), score)
	raw, _ := json.Marshal(scores)
	p.QuizScores = datatypes.JSON(raw)
}
