package controllers

import (
	"errors"
	"strconv"
	"strings"

	"edubridge/backend/models"
	"edubridge/backend/services"
	"edubridge/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CoursesController struct {
	DB         *gorm.DB
	Enrollment *services.EnrollmentService
}

func NewCoursesController(db *gorm.DB, enrollment *services.EnrollmentService) *CoursesController {
	return &CoursesController{DB: db, Enrollment: enrollment}
}

type CreateCourseInput struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Level       string          `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Thumbnail   string          `json:"thumbnail"`
	Lessons     []models.Lesson `json:"lessons"`
	Quizzes     []models.Quiz   `json:"quizzes"`
}

type UpdateCourseInput struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Level       *string          `json:"level" validate:"omitempty,oneof=beginner intermediate advanced"`
	Thumbnail   *string          `json:"thumbnail"`
	Lessons     *[]models.Lesson `json:"lessons"`
	Quizzes     *[]models.Quiz   `json:"quizzes"`
}

func courseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid course ID")
	}
	return uint(id), nil
}

// CreateCourse creates a course owned by the authenticated instructor.
// Role enforcement (teacher or admin) happens in the route middleware.
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input CreateCourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if details := utils.ValidateStruct(input); details != nil {
		return utils.ValidationError(c, details)
	}

	level := input.Level
	if level == "" {
		level = "beginner"
	}

	course := models.Course{
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Level:        level,
		Thumbnail:    input.Thumbnail,
		InstructorID: user.ID,
	}
	course.SetLessonList(input.Lessons)
	course.SetQuizList(input.Quizzes)
	course.SetEnrolledStudentIDs(nil)

	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not create course")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Course created successfully",
		"course":  course,
	})
}

// GetCourses lists courses, optionally filtered by category, level and a
// case-insensitive title search. No authentication required.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	query := cc.DB.Model(&models.Course{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if level := c.Query("level"); level != "" {
		query = query.Where("level = ?", level)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	courses := []models.Course{}
	if err := query.Find(&courses).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch courses")
	}

	return c.JSON(fiber.Map{"courses": courses})
}

// GetCourse returns a single course by id.
func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	courseID, err := courseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not fetch course")
	}

	return c.JSON(fiber.Map{"course": course})
}

// UpdateCourse lets the owning instructor or an admin edit course fields.
func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := courseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not fetch course")
	}

	if course.InstructorID != user.ID && user.Role != models.RoleAdmin {
		return utils.Forbidden(c, "Not the course instructor")
	}

	var input UpdateCourseInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if details := utils.ValidateStruct(input); details != nil {
		return utils.ValidationError(c, details)
	}

	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.Category != nil {
		course.Category = *input.Category
	}
	if input.Level != nil {
		course.Level = *input.Level
	}
	if input.Thumbnail != nil {
		course.Thumbnail = *input.Thumbnail
	}
	if input.Lessons != nil {
		course.SetLessonList(*input.Lessons)
	}
	if input.Quizzes != nil {
		course.SetQuizList(*input.Quizzes)
	}

	if err := cc.DB.Save(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not update course")
	}

	return c.JSON(fiber.Map{
		"message": "Course updated successfully",
		"course":  course,
	})
}

// DeleteCourse removes a course. Owner or admin only.
func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := courseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not fetch course")
	}

	if course.InstructorID != user.ID && user.Role != models.RoleAdmin {
		return utils.Forbidden(c, "Not the course instructor")
	}

	if err := cc.DB.Delete(&course).Error; err != nil {
		return utils.InternalServerError(c, "Could not delete course")
	}

	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}

// Enroll enrolls the authenticated user in a course.
func (cc *CoursesController) Enroll(c *fiber.Ctx) error {
	userID, ok := currentUser(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID, err := courseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	course, err := cc.Enrollment.Enroll(userID, courseID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Enrolled successfully",
		"course":  course,
	})
}
