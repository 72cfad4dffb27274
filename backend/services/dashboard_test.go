package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "dashboard@example.com")
	courseA := createCourse(t, db, "Course A", 2)
	courseB := createCourse(t, db, "Course B", 2)

	enrollment := NewEnrollmentService(db)
	_, err := enrollment.Enroll(student.ID, courseA.ID)
	require.NoError(t, err)
	_, err = enrollment.Enroll(student.ID, courseB.ID)
	require.NoError(t, err)

	progress := NewProgressService(db)

	// Course A fully completed (100%), course B half done (50%).
	for _, idx := range []int{0, 1} {
		_, err := progress.CompleteLesson(student.ID, courseA.ID, idx)
		require.NoError(t, err)
	}
	_, err = progress.CompleteLesson(student.ID, courseB.ID, 0)
	require.NoError(t, err)

	// Certificate for course A via a quiz submission at 100%.
	_, err = progress.RecordQuizScore(student.ID, courseA.ID, 0, 10, 10)
	require.NoError(t, err)

	dashboard, err := NewDashboardService(db).GetDashboard(student.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, dashboard.Stats.TotalCourses)
	assert.Equal(t, 1, dashboard.Stats.CompletedCourses)
	assert.Equal(t, 1, dashboard.Stats.Certificates)
	assert.Len(t, dashboard.EnrolledCourses, 2)
	assert.Len(t, dashboard.ProgressData, 2)
}

func TestDashboardToleratesMissingProgress(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "partial@example.com")
	course := createCourse(t, db, "Orphaned Course", 2)

	// Simulate the partial-failure window: the student's enrolled list points
	// at a course with no progress record.
	student.SetEnrolledCourseIDs([]uint{course.ID})
	require.NoError(t, db.Save(student).Error)

	dashboard, err := NewDashboardService(db).GetDashboard(student.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, dashboard.Stats.TotalCourses)
	assert.Equal(t, 0, dashboard.Stats.CompletedCourses)
	assert.Equal(t, 0, dashboard.Stats.Certificates)
	assert.Empty(t, dashboard.ProgressData)
}

func TestDashboardEmptyForNewStudent(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "empty@example.com")

	dashboard, err := NewDashboardService(db).GetDashboard(student.ID)
	require.NoError(t, err)

	assert.Equal(t, DashboardStats{}, dashboard.Stats)
	assert.Empty(t, dashboard.EnrolledCourses)
	assert.Empty(t, dashboard.ProgressData)
}

func TestDashboardUnknownStudent(t *testing.T) {
	db := newTestDB(t)

	_, err := NewDashboardService(db).GetDashboard(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
