package controllers

import (
	"errors"

	"edubridge/backend/services"
	"edubridge/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps a typed domain error onto an HTTP status. Anything
// unrecognized degrades to a 500 carrying only the error message.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrCourseNotFound),
		errors.Is(err, services.ErrProgressNotFound),
		errors.Is(err, services.ErrUserNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyEnrolled):
		return utils.BadRequest(c, "Already enrolled")
	case errors.Is(err, services.ErrLessonOutOfRange):
		return utils.BadRequest(c, err.Error())
	default:
		return utils.InternalServerError(c, err.Error())
	}
}

// currentUser pulls the authenticated user placed in locals by the auth
// middleware.
func currentUser(c *fiber.Ctx) (userID uint, ok bool) {
	userID, ok = c.Locals("userId").(uint)
	return userID, ok
}
