package main

import (
	"log"

	"edubridge/backend/config"
	"edubridge/backend/models"
	"edubridge/backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the database with demo accounts and a few free courses.
// Run with: go run ./scripts

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Database seeded successfully")
	log.Println("Admin:   admin@edubridge.com / password123")
	log.Println("Teacher: teacher@demo.com / password123")
	log.Println("Student: student@demo.com / password123")
}

func seed(db *gorm.DB) error {
	// Clear previous data
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Progress{}).Error; err != nil {
		return err
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Course{}).Error; err != nil {
		return err
	}
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.User{}).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{Name: "Admin User", Email: "admin@edubridge.com", Password: string(hash), Role: models.RoleAdmin, IsActive: true}
	teacher := models.User{Name: "John Teacher", Email: "teacher@demo.com", Password: string(hash), Role: models.RoleTeacher, IsActive: true}
	student := models.User{Name: "Jane Student", Email: "student@demo.com", Password: string(hash), Role: models.RoleStudent, IsActive: true}
	for _, u := range []*models.User{&admin, &teacher, &student} {
		u.SetEnrolledCourseIDs(nil)
		if err := db.Create(u).Error; err != nil {
			return err
		}
	}
	log.Println("Created 3 users")

	webDev := models.Course{
		Title:        "Introduction to Web Development",
		Description:  "Learn the fundamentals of web development including HTML, CSS, and JavaScript.",
		Category:     "Programming",
		Level:        "beginner",
		InstructorID: teacher.ID,
	}
	webDev.SetLessonList([]models.Lesson{
		{Title: "Getting Started with HTML", Content: "HTML structure, tags, and semantic markup.", Duration: 45, Order: 1},
		{Title: "Styling with CSS", Content: "CSS selectors, colors, fonts, and layout basics.", Duration: 60, Order: 2},
		{Title: "JavaScript Fundamentals", Content: "Variables, functions, conditionals, and loops.", Duration: 75, Order: 3},
		{Title: "Building Your First Website", Content: "Put everything together into a responsive website.", Duration: 90, Order: 4},
	})
	webDev.SetQuizList([]models.Quiz{
		{Question: "Which tag defines a top-level heading?", Options: []string{"<p>", "<h1>", "<div>", "<span>"}, CorrectAnswer: 1, Points: 10},
		{Question: "Which language styles a web page?", Options: []string{"HTML", "CSS", "SQL", "Go"}, CorrectAnswer: 1, Points: 10},
	})

	python := models.Course{
		Title:        "Python for Beginners",
		Description:  "Start your programming journey with Python.",
		Category:     "Programming",
		Level:        "beginner",
		InstructorID: teacher.ID,
	}
	python.SetLessonList([]models.Lesson{
		{Title: "Python Basics", Content: "Variables, data types, and basic operations.", Duration: 40, Order: 1},
		{Title: "Control Flow", Content: "If statements, loops, and logical operators.", Duration: 50, Order: 2},
		{Title: "Functions and Modules", Content: "Creating reusable code with functions.", Duration: 55, Order: 3},
	})

	math := models.Course{
		Title:        "Mathematics Fundamentals",
		Description:  "Master essential mathematical concepts including algebra and geometry.",
		Category:     "Mathematics",
		Level:        "intermediate",
		InstructorID: teacher.ID,
	}
	math.SetLessonList([]models.Lesson{
		{Title: "Algebra Basics", Content: "Variables, expressions, and equations.", Duration: 45, Order: 1},
		{Title: "Geometry Fundamentals", Content: "Shapes, angles, and spatial reasoning.", Duration: 50, Order: 2},
	})

	for _, course := range []*models.Course{&webDev, &python, &math} {
		course.SetEnrolledStudentIDs(nil)
		if course.Quizzes == nil {
			course.SetQuizList(nil)
		}
		if err := db.Create(course).Error; err != nil {
			return err
		}
	}
	log.Println("Created 3 courses")

	return nil
}
