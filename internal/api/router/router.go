package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Yassin-Hegazy/Hrmanagment1/config"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/api/handler"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/api/middleware"
	"github.com/Yassin-Hegazy/Hrmanagment1/internal/model"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/jwt"
	"github.com/Yassin-Hegazy/Hrmanagment1/pkg/redis"
)

const maxBodyBytes = 8 << 20 // ICS 日历上传的上限

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	hrAdmin := middleware.RoleAuth(string(model.RoleHRAdmin), string(model.RoleSystemAdmin))
	manager := middleware.RoleAuth(string(model.RoleManager), string(model.RoleHRAdmin), string(model.RoleSystemAdmin))

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentEmployee)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)

			// 员工模块
			employees := authorized.Group("/employees")
			{
				employees.GET("", manager, h.Employee.ListEmployees)
				employees.GET("/:id", h.Employee.GetEmployee)
				employees.POST("", hrAdmin, h.Employee.CreateEmployee)
				employees.PUT("/:id", hrAdmin, h.Employee.UpdateEmployee)
				employees.PUT("/:id/role", hrAdmin, h.Employee.AssignRole)
				employees.POST("/:id/lock", hrAdmin, h.Employee.LockEmployee)
				employees.POST("/:id/unlock", hrAdmin, h.Employee.UnlockEmployee)
				employees.DELETE("/:id", hrAdmin, h.Employee.DeleteEmployee)

				// 层级模块（以员工为锚点的端点）
				employees.PUT("/:id/reassign", hrAdmin, h.Hierarchy.Reassign)
				employees.GET("/:id/subordinates", manager, h.Hierarchy.GetSubordinates)

				// 员工子资源
				employees.GET("/:id/shift-assignments", h.Shift.ListAssignments)
				employees.GET("/:id/contracts", hrAdmin, h.Contract.ListByEmployee)
			}

			// 层级模块
			hierarchy := authorized.Group("/hierarchy")
			{
				hierarchy.GET("/tree", manager, h.Hierarchy.GetOrgTree)
				hierarchy.GET("/projection", manager, h.Hierarchy.GetProjection)
				hierarchy.POST("/rebuild", hrAdmin, h.Hierarchy.RebuildProjection)
			}

			// 部门模块
			departments := authorized.Group("/departments")
			{
				departments.GET("", h.Department.ListDepartments)
				departments.GET("/:id", h.Department.GetDepartment)
				departments.GET("/:id/members", manager, h.Department.GetMembers)
				departments.POST("", hrAdmin, h.Department.CreateDepartment)
				departments.PUT("/:id", hrAdmin, h.Department.UpdateDepartment)
				departments.PUT("/:id/head", hrAdmin, h.Department.AssignHead)
				departments.DELETE("/:id", hrAdmin, h.Department.DeleteDepartment)
			}

			// 班次模块
			shifts := authorized.Group("/shifts")
			{
				shifts.GET("", h.Shift.ListSchedules)
				shifts.GET("/:id", h.Shift.GetSchedule)
				shifts.POST("", hrAdmin, h.Shift.CreateSchedule)
				shifts.PUT("/:id", hrAdmin, h.Shift.UpdateSchedule)
				shifts.DELETE("/:id", hrAdmin, h.Shift.DeleteSchedule)
			}
			cycles := authorized.Group("/rotation-cycles")
			{
				cycles.GET("", h.Shift.ListCycles)
				cycles.GET("/:id", h.Shift.GetCycle)
				cycles.POST("", hrAdmin, h.Shift.CreateCycle)
			}
			authorized.POST("/shift-assignments", hrAdmin, h.Shift.AssignShift)

			// 考勤模块
			attendance := authorized.Group("/attendance")
			{
				attendance.POST("/clock", h.Attendance.Clock)
				attendance.GET("", h.Attendance.ListAttendance)
				attendance.GET("/export", manager, h.Attendance.ExportAttendance)
				attendance.GET("/:id", h.Attendance.GetAttendance)
				attendance.GET("/:id/logs", manager, h.Attendance.ListLogs)
			}
			rules := authorized.Group("/attendance-rules")
			{
				rules.GET("", manager, h.Attendance.ListRules)
				rules.POST("", hrAdmin, h.Attendance.CreateRule)
				rules.PUT("/:id", hrAdmin, h.Attendance.UpdateRule)
				rules.DELETE("/:id", hrAdmin, h.Attendance.DeleteRule)
			}
			corrections := authorized.Group("/corrections")
			{
				corrections.POST("", h.Attendance.SubmitCorrection)
				corrections.GET("/mine", h.Attendance.ListMyCorrections)
				corrections.GET("/pending", manager, h.Attendance.ListPendingCorrections)
				corrections.PUT("/:id/review", manager, h.Attendance.ReviewCorrection)
			}

			// 假期模块
			authorized.GET("/leave-types", h.Leave.ListTypes)
			authorized.POST("/leave-types", hrAdmin, h.Leave.CreateType)
			authorized.GET("/leave-policies", h.Leave.ListPolicies)
			authorized.POST("/leave-policies", hrAdmin, h.Leave.CreatePolicy)
			authorized.PUT("/leave-entitlements", hrAdmin, h.Leave.SetEntitlement)
			authorized.GET("/leave-entitlements/mine", h.Leave.ListMyEntitlements)
			leaveRequests := authorized.Group("/leave-requests")
			{
				leaveRequests.POST("", h.Leave.SubmitRequest)
				leaveRequests.GET("/mine", h.Leave.ListMyRequests)
				leaveRequests.GET("/pending", manager, h.Leave.ListPendingRequests)
				leaveRequests.PUT("/:id/review", manager, h.Leave.ReviewRequest)
				leaveRequests.DELETE("/:id", h.Leave.CancelRequest)
			}

			// 外派模块
			missions := authorized.Group("/missions")
			{
				missions.POST("", manager, h.Mission.Create)
				missions.GET("/mine", h.Mission.ListMine)
				missions.GET("/pending", manager, h.Mission.ListPending)
				missions.GET("/:id", h.Mission.Get)
				missions.PUT("/:id/review", manager, h.Mission.Review)
				missions.PUT("/:id/complete", manager, h.Mission.Complete)
			}

			// 合同模块
			contracts := authorized.Group("/contracts")
			contracts.Use(hrAdmin)
			{
				contracts.POST("", h.Contract.Create)
				contracts.GET("/expiring", h.Contract.ListExpiring)
				contracts.GET("/:id", h.Contract.Get)
				contracts.PUT("/:id/renew", h.Contract.Renew)
				contracts.PUT("/:id/terminate", h.Contract.Terminate)
			}

			// 通知模块
			notifications := authorized.Group("/notifications")
			{
				notifications.GET("", h.Notification.List)
				notifications.GET("/unread-count", h.Notification.CountUnread)
				notifications.PUT("/read-all", h.Notification.MarkAllRead)
				notifications.PUT("/:id/read", h.Notification.MarkRead)
				notifications.POST("/broadcast", hrAdmin, h.Notification.Broadcast)
			}

			// 例外日模块
			exceptions := authorized.Group("/exception-days")
			{
				exceptions.GET("", h.Exception.ListRange)
				exceptions.POST("", hrAdmin, h.Exception.Create)
				exceptions.POST("/import-ics", hrAdmin, h.Exception.ImportICS)
				exceptions.DELETE("/:id", hrAdmin, h.Exception.Delete)
			}

			// 统计模块
			analytics := authorized.Group("/analytics")
			analytics.Use(manager)
			{
				analytics.GET("/attendance-summary", h.Analytics.AttendanceSummary)
				analytics.GET("/lateness-ranking", h.Analytics.LatenessRanking)
				analytics.GET("/department-headcount", h.Analytics.DepartmentHeadcount)
				analytics.GET("/employees/:id/mission-days", h.Analytics.EmployeeMissionDays)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
