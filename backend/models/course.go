package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lesson is one entry in a course's ordered lesson list, stored embedded in
// the course row as JSON.
type Lesson struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	VideoURL string `json:"videoUrl"`
	Duration int    `json:"duration"` // minutes
	Order    int    `json:"order"`
}

// Quiz is a single multiple-choice question embedded in a course.
type Quiz struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Points        int      `json:"points"`
}

type Course struct {
	ID               uint           `json:"id" gorm:"primarykey"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description"`
	Category         string         `json:"category"`
	Level            string         `json:"level" gorm:"default:beginner"` // beginner, intermediate, advanced
	InstructorID     uint           `json:"instructorId" gorm:"index"`
	Thumbnail        string         `json:"thumbnail"`
	Lessons          datatypes.JSON `json:"lessons"`
	Quizzes          datatypes.JSON `json:"quizzes"`
	EnrolledStudents datatypes.JSON `json:"enrolledStudents"`
}

func (c *Course) LessonList() []Lesson {
	lessons := []Lesson{}
	if len(c.Lessons) > 0 {
		_ = json.Unmarshal(c.Lessons, &lessons)
	}
	return lessons
}

func (c *Course) SetLessonList(lessons []Lesson) {
	if lessons == nil {
		lessons = []Lesson{}
	}
	raw, _ := json.Marshal(lessons)
	c.Lessons = datatypes.JSON(raw)
}

func (c *Course) QuizList() []Quiz {
	quizzes := []Quiz{}
	if len(c.Quizzes) > 0 {
		_ = json.Unmarshal(c.Quizzes, &quizzes)
	}
	return quizzes
}

func (c *Course) SetQuizList(quizzes []Quiz) {
	if quizzes == nil {
		quizzes = []Quiz{}
	}
	raw, _ := json.Marshal(quizzes)
	c.Quizzes = datatypes.JSON(raw)
}

func (c *Course) EnrolledStudentIDs() []uint {
	ids := []uint{}
	if len(c.EnrolledStudents) > 0 {
		_ = json.Unmarshal(c.EnrolledStudents, &ids)
	}
	return ids
}

func (c *Course) SetEnrolledStudentIDs(ids []uint) {
	if ids == nil {
		ids = []uint{}
	}
	raw, _ := json.Marshal(ids)
	c.EnrolledStudents = datatypes.JSON(raw)
}

// IsEnrolled reports whether the student already appears in the course's
// enrolled list.
func (c *Course) IsEnrolled(studentID uint) bool {
	for _, id := range c.EnrolledStudentIDs() {
		if id == studentID {
			return true
		}
	}
	return false
}
