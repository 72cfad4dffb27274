package services

import (
	"errors"
	"fmt"
)

var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrProgressNotFound = errors.New("progress not found")
	ErrAlreadyEnrolled  = errors.New("already enrolled")
	ErrLessonOutOfRange = errors.New("lesson index out of range")
	ErrPersistence      = errors.New("persistence failure")
)

func persistenceError(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, cause)
}
