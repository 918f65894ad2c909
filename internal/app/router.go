package app

import (
	"lms_backend/docs"
	"lms_backend/internal/config"
	"lms_backend/internal/middleware"
	"lms_backend/internal/model"
	"lms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerStudentRoutes(group *gin.RouterGroup, c *controllers) {
	group.GET("/users/me", c.user.GetProfile)
	group.PUT("/users/me", c.user.UpdateProfile)

	group.GET("/lessons", c.lesson.ListLessons)
	group.GET("/lessons/:id", c.lesson.GetLesson)
	group.GET("/lessons/:id/checkpoints", c.checkpoint.ListCheckpoints)
	group.GET("/lessons/:id/quizzes", c.quiz.ListQuizzes)

	group.PUT("/lessons/:id/progress", c.progress.UpdateProgress)
	group.GET("/lessons/:id/progress", c.progress.GetProgress)
	group.GET("/progress", c.progress.ListMyProgress)

	group.GET("/ranking", c.ranking.GetStudentRanking)

	group.GET("/calendar", c.calendar.ListEvents)
	group.POST("/calendar", c.calendar.CreateEvent)
	group.PUT("/calendar/:id", c.calendar.UpdateEvent)
	group.DELETE("/calendar/:id", c.calendar.DeleteEvent)

	group.POST("/study-time/start", c.studyTime.StartStudy)
	group.POST("/study-time/stop", c.studyTime.StopStudy)
	group.GET("/study-time/stats", c.studyTime.StudyStats)

	group.GET("/assignments", c.assignment.ListAssignments)
	group.GET("/assignments/:id", c.assignment.GetAssignment)
	group.GET("/assignments/:id/questions", c.assignment.ListQuestions)
	group.POST("/assignments/:id/submissions", c.submission.Submit)
	group.GET("/assignments/:id/submissions/mine", c.submission.GetMySubmission)
}

func (a *App) registerTeacherRoutes(group *gin.RouterGroup, c *controllers) {
	teacher := group.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.Teacher))
	{
		teacher.GET("/lessons", c.lesson.ListMyLessons)
		teacher.POST("/lessons", c.lesson.CreateLesson)
		teacher.PUT("/lessons/:id", c.lesson.UpdateLesson)
		teacher.DELETE("/lessons/:id", c.lesson.DeleteLesson)
		teacher.POST("/lessons/:id/video", c.lesson.UploadLessonVideo)
		teacher.GET("/lessons/:id/progress", c.progress.ListLessonProgress)

		teacher.POST("/lessons/:id/checkpoints", c.checkpoint.CreateCheckpoint)
		teacher.PUT("/lessons/:id/checkpoints/:checkpointId", c.checkpoint.UpdateCheckpoint)
		teacher.DELETE("/lessons/:id/checkpoints/:checkpointId", c.checkpoint.DeleteCheckpoint)

		teacher.POST("/lessons/:id/quizzes", c.quiz.CreateQuiz)
		teacher.PUT("/lessons/:id/quizzes/:quizId", c.quiz.UpdateQuiz)
		teacher.DELETE("/lessons/:id/quizzes/:quizId", c.quiz.DeleteQuiz)

		teacher.GET("/assignments", c.assignment.ListMyAssignments)
		teacher.POST("/assignments", c.assignment.CreateAssignment)
		teacher.PUT("/assignments/:id", c.assignment.UpdateAssignment)
		teacher.DELETE("/assignments/:id", c.assignment.DeleteAssignment)
		teacher.POST("/assignments/:id/questions", c.assignment.AddQuestion)
		teacher.DELETE("/assignments/:id/questions/:questionId", c.assignment.DeleteQuestion)
		teacher.GET("/assignments/:id/submissions", c.submission.ListSubmissions)
		teacher.POST("/submissions/:id/grade", c.submission.Grade)
	}
}

func (a *App) registerAdminRoutes(group *gin.RouterGroup, c *controllers) {
	admin := group.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.ListUsers)
		admin.DELETE("/users/:id", c.user.DeleteUser)
		admin.POST("/calendar", c.calendar.CreateEvent)
	}
}
