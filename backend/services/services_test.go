package services

import (
	"fmt"
	"testing"

	"edubridge/backend/models"
	"edubridge/backend/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database per test. The DSN is keyed by
// test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, utils.Migrate(db))
	return db
}

func createStudent(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "Test Student",
		Email:    email,
		Password: "not-a-real-hash",
		Role:     models.RoleStudent,
		IsActive: true,
	}
	user.SetEnrolledCourseIDs(nil)
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCourse(t *testing.T, db *gorm.DB, title string, lessonCount int) *models.Course {
	t.Helper()

	course := &models.Course{
		Title:        title,
		Description:  "A course for testing",
		Category:     "Programming",
		Level:        "beginner",
		InstructorID: 1,
	}
	lessons := make([]models.Lesson, lessonCount)
	for i := range lessons {
		lessons[i] = models.Lesson{
			Title:    fmt.Sprintf("Lesson %d", i+1),
			Content:  "Lesson content",
			Duration: 30,
			Order:    i + 1,
		}
	}
	course.SetLessonList(lessons)
	course.SetQuizList([]models.Quiz{
		{Question: "2 + 2?", Options: []string{"3", "4", "5"}, CorrectAnswer: 1, Points: 10},
	})
	course.SetEnrolledStudentIDs(nil)
	require.NoError(t, db.Create(course).Error)
	return course
}

func reload[T any](t *testing.T, db *gorm.DB, id uint) *T {
	t.Helper()

	var value T
	require.NoError(t, db.First(&value, id).Error)
	return &value
}
