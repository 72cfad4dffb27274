package controllers

import (
	"edubridge/backend/services"
	"edubridge/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{Progress: progress}
}

type CompleteLessonInput struct {
	LessonIndex int `json:"lessonIndex"`
}

type QuizScoreInput struct {
	QuizIndex int `json:"quizIndex"`
	Score     int `json:"score"`
	MaxScore  int `json:"maxScore"`
}

// GetProgress returns the caller's progress for a course.
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := courseIDParam(c, "courseId")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	progress, err := pc.Progress.Get(userID, courseID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"progress": progress})
}

// CompleteLesson marks a lesson completed for the caller.
func (pc *ProgressController) CompleteLesson(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := courseIDParam(c, "courseId")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var input CompleteLessonInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	progress, err := pc.Progress.CompleteLesson(userID, courseID, input.LessonIndex)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Progress updated",
		"progress": progress,
	})
}

// RecordQuizScore records a quiz submission for the caller.
func (pc *ProgressController) RecordQuizScore(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := courseIDParam(c, "courseId")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var input QuizScoreInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	progress, err := pc.Progress.RecordQuizScore(userID, courseID, input.QuizIndex, input.Score, input.MaxScore)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Quiz score recorded",
		"progress": progress,
	})
}
