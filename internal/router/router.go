package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-task-api/internal/handler"
	"project-task-api/internal/metrics"
	"project-task-api/internal/middleware"
	"project-task-api/internal/repository"
	"project-task-api/internal/service"
)

// Config carries the dependencies the router needs
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	AllowedOrigins []string
	SummaryTTL     time.Duration
	Metrics        *metrics.Metrics
}

// Setup wires repositories, services, handlers and middleware into a
// gin engine
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	repos := repository.NewRepositories(cfg.DB)
	txManager := repository.NewTxManager(cfg.DB)
	cache := service.NewDashboardCache(cfg.Redis, cfg.SummaryTTL, cfg.Metrics, cfg.Logger)

	userService := service.NewUserService(repos.Users, cfg.Logger)
	projectService := service.NewProjectService(repos.Projects, repos.Users, txManager, cache, cfg.Metrics, cfg.Logger)
	teamService := service.NewTeamService(repos.Teams, repos.Projects, repos.Users, cfg.Metrics, cfg.Logger)
	taskService := service.NewTaskService(repos.Tasks, repos.Projects, repos.Users, txManager, cache, cfg.Metrics, cfg.Logger)
	tagService := service.NewTagService(repos.Tags, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(repos.Comments, repos.Tasks, cfg.Metrics, cfg.Logger)
	dashboardService := service.NewDashboardService(repos.Tasks, repos.Projects, cache, cfg.Logger)

	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	teamHandler := handler.NewTeamHandler(teamService)
	taskHandler := handler.NewTaskHandler(taskService)
	tagHandler := handler.NewTagHandler(tagService)
	commentHandler := handler.NewCommentHandler(commentService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group(cfg.BasePath)
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	api.GET("/health", healthHandler.Health)

	authorized := api.Group("")
	authorized.Use(middleware.Auth(cfg.JWTSecret))
	authorized.Use(middleware.UserSync(repos.Users, cfg.Logger))
	{
		authorized.POST("/projects", projectHandler.CreateProject)
		authorized.GET("/projects", projectHandler.GetProjects)
		authorized.GET("/projects/:projectId", projectHandler.GetProject)
		authorized.PUT("/projects/:projectId", projectHandler.UpdateProject)
		authorized.DELETE("/projects/:projectId", projectHandler.DeleteProject)

		authorized.POST("/teams", teamHandler.CreateTeam)
		authorized.GET("/teams", teamHandler.GetTeams)
		authorized.GET("/teams/:teamId", teamHandler.GetTeam)
		authorized.PUT("/teams/:teamId", teamHandler.UpdateTeam)

		authorized.POST("/tasks", taskHandler.CreateTask)
		authorized.GET("/tasks", taskHandler.GetTasks)
		authorized.PUT("/tasks/:taskId", taskHandler.UpdateTask)
		authorized.DELETE("/tasks/:taskId", taskHandler.DeleteTask)
		authorized.GET("/tasks/:taskId/comments", commentHandler.GetTaskComments)

		authorized.POST("/tags", tagHandler.CreateTag)
		authorized.GET("/tags", tagHandler.GetTags)

		authorized.POST("/comments", commentHandler.CreateComment)
		authorized.PUT("/comments/:commentId", commentHandler.UpdateComment)
		authorized.DELETE("/comments/:commentId", commentHandler.DeleteComment)

		authorized.GET("/users", userHandler.GetUsers)
		authorized.PUT("/users/me", userHandler.UpdateProfile)
		authorized.GET("/users/:userId", userHandler.GetUser)

		authorized.GET("/dashboard/summary", dashboardHandler.GetSummary)
	}

	return r
}
