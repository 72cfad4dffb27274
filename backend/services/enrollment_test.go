package services

import (
	"testing"

	"edubridge/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollCreatesProgressRecord(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "enroll@example.com")
	course := createCourse(t, db, "Go Basics", 4)

	svc := NewEnrollmentService(db)

	enrolled, err := svc.Enroll(student.ID, course.ID)
	require.NoError(t, err)
	assert.Contains(t, enrolled.EnrolledStudentIDs(), student.ID)

	freshCourse := reload[models.Course](t, db, course.ID)
	assert.Contains(t, freshCourse.EnrolledStudentIDs(), student.ID)

	freshStudent := reload[models.User](t, db, student.ID)
	assert.Contains(t, freshStudent.EnrolledCourseIDs(), course.ID)

	var progress []models.Progress
	require.NoError(t, db.Where("student_id = ? AND course_id = ?", student.ID, course.ID).Find(&progress).Error)
	require.Len(t, progress, 1)
	assert.Empty(t, progress[0].CompletedLessonIndexes())
	assert.Empty(t, progress[0].QuizScoreList())
	assert.Zero(t, progress[0].OverallProgress)
	assert.False(t, progress[0].CertificateIssued)
}

func TestEnrollTwiceFails(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "twice@example.com")
	course := createCourse(t, db, "Go Basics", 4)

	svc := NewEnrollmentService(db)

	_, err := svc.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(student.ID, course.ID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// State unchanged after the failed call.
	freshCourse := reload[models.Course](t, db, course.ID)
	assert.Equal(t, []uint{student.ID}, freshCourse.EnrolledStudentIDs())

	var count int64
	require.NoError(t, db.Model(&models.Progress{}).
		Where("student_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnrollUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	student := createStudent(t, db, "nocourse@example.com")

	svc := NewEnrollmentService(db)

	_, err := svc.Enroll(student.ID, 9999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestEnrollUnknownStudent(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, "Go Basics", 4)

	svc := NewEnrollmentService(db)

	_, err := svc.Enroll(9999, course.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
