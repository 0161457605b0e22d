package tasks

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/database"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/dto"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/handler"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/middleware"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/model"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/service"
	"github.com/Abbas-Hussain-byte/primetrade-assignment/internal/store"
)

var (
	listTasks        = store.ListTasks
	listTasksByOwner = store.ListTasksByOwner
	getTaskByID      = store.GetTaskByID
	createTask       = store.CreateTask
	updateTask       = store.UpdateTask
	deleteTask       = store.DeleteTask
)

const taskNotFound = "Task not found"

// requester 取出已驗證的使用者，不存在時直接回 401
func requester(c echo.Context) (*model.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, handler.Fail(c, http.StatusUnauthorized, "Not authorized to access this route")
	}
	return user, nil
}

// loadTask 解析 :id 並讀取工作；回傳 nil task 表示已寫出錯誤回應
func loadTask(c echo.Context, db database.DB) (*model.Task, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, handler.Fail(c, http.StatusBadRequest, "invalid task ID")
	}
	task, err := getTaskByID(c.Request().Context(), db, id)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, handler.Fail(c, http.StatusNotFound, taskNotFound)
		}
		return nil, handler.InternalError(c, err, "failed to load task")
	}
	return task, nil
}

// @Summary     List tasks
// @Description 管理員取得所有工作，一般使用者只取得自己的工作，新到舊排序
// @Tags        tasks
// @Produce     json
// @Success     200 {object} dto.TaskListResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks [get]
func ListTasksHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := requester(c)
		if user == nil {
			return err
		}

		ctx := c.Request().Context()
		var list []model.Task
		if user.IsAdmin() {
			list, err = listTasks(ctx, db)
		} else {
			list, err = listTasksByOwner(ctx, db, user.ID)
		}
		if err != nil {
			return handler.InternalError(c, err, "failed to list tasks")
		}

		data := make([]dto.TaskResponse, 0, len(list))
		for _, t := range list {
			data = append(data, dto.NewTaskResponse(t))
		}
		return c.JSON(http.StatusOK, dto.TaskListResponse{
			Success: true,
			Count:   len(data),
			Data:    data,
		})
	}
}

// @Summary     Get a task by ID
// @Description 擁有者或管理員可讀取
// @Tags        tasks
// @Produce     json
// @Param       id  path     string true "工作 ID"
// @Success     200 {object} dto.TaskEnvelope
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks/{id} [get]
func GetTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := requester(c)
		if user == nil {
			return err
		}
		task, err := loadTask(c, db)
		if task == nil {
			return err
		}
		if !service.CanViewTask(*user, *task) {
			return handler.Fail(c, http.StatusForbidden, "User not authorized to access this task")
		}
		return c.JSON(http.StatusOK, dto.TaskEnvelope{Success: true, Data: dto.NewTaskResponse(*task)})
	}
}

// @Summary     Create a task
// @Description 建立工作，擁有者固定為目前登入的使用者
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateTaskRequest true "工作資料"
// @Success     201     {object} dto.TaskEnvelope
// @Failure     400     {object} dto.HTTPError
// @Failure     401     {object} dto.HTTPError
// @Failure     500     {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks [post]
func CreateTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := requester(c)
		if user == nil {
			return err
		}

		var req dto.CreateTaskRequest
		if err := c.Bind(&req); err != nil {
			return handler.Fail(c, http.StatusBadRequest, "invalid request body")
		}
		req.Title = strings.TrimSpace(req.Title)
		if err := c.Validate(&req); err != nil {
			return handler.Fail(c, http.StatusBadRequest, handler.ValidationMessage(err))
		}

		task, err := createTask(c.Request().Context(), db, &model.Task{
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
			OwnerID:     user.ID,
			OwnerName:   user.Name,
			OwnerEmail:  user.Email,
		})
		if err != nil {
			return handler.InternalError(c, err, "failed to create task")
		}
		return c.JSON(http.StatusCreated, dto.TaskEnvelope{Success: true, Data: dto.NewTaskResponse(*task)})
	}
}

// @Summary     Update a task
// @Description 部分更新 title / description / status，只有擁有者可更新
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       id      path     string                true "工作 ID"
// @Param       request body     dto.UpdateTaskRequest true "更新欄位"
// @Success     200     {object} dto.TaskEnvelope
// @Failure     400     {object} dto.HTTPError
// @Failure     401     {object} dto.HTTPError
// @Failure     403     {object} dto.HTTPError
// @Failure     404     {object} dto.HTTPError
// @Failure     500     {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks/{id} [put]
func UpdateTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := requester(c)
		if user == nil {
			return err
		}
		task, err := loadTask(c, db)
		if task == nil {
			return err
		}
		if !service.CanUpdateTask(*user, *task) {
			return handler.Fail(c, http.StatusForbidden, "User not authorized to update this task")
		}

		var req dto.UpdateTaskRequest
		if err := c.Bind(&req); err != nil {
			return handler.Fail(c, http.StatusBadRequest, "invalid request body")
		}
		if req.Title != nil {
			trimmed := strings.TrimSpace(*req.Title)
			if trimmed == "" {
				return handler.Fail(c, http.StatusBadRequest, "Please add a title")
			}
			req.Title = &trimmed
		}
		if req.Description != nil && *req.Description == "" {
			return handler.Fail(c, http.StatusBadRequest, "Please add a description")
		}
		if err := c.Validate(&req); err != nil {
			return handler.Fail(c, http.StatusBadRequest, handler.ValidationMessage(err))
		}

		updated, err := updateTask(c.Request().Context(), db, task.ID, model.TaskPatch{
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
		})
		if err != nil {
			if store.IsNotFound(err) {
				return handler.Fail(c, http.StatusNotFound, taskNotFound)
			}
			return handler.InternalError(c, err, "failed to update task")
		}
		return c.JSON(http.StatusOK, dto.TaskEnvelope{Success: true, Data: dto.NewTaskResponse(*updated)})
	}
}

// @Summary     Delete a task
// @Description 擁有者或管理員可刪除
// @Tags        tasks
// @Produce     json
// @Param       id  path     string true "工作 ID"
// @Success     200 {object} dto.DeleteResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks/{id} [delete]
func DeleteTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := requester(c)
		if user == nil {
			return err
		}
		task, err := loadTask(c, db)
		if task == nil {
			return err
		}
		if !service.CanDeleteTask(*user, *task) {
			return handler.Fail(c, http.StatusForbidden, "User not authorized to delete this task")
		}

		if err := deleteTask(c.Request().Context(), db, task.ID); err != nil {
			if store.IsNotFound(err) {
				return handler.Fail(c, http.StatusNotFound, taskNotFound)
			}
			return handler.InternalError(c, err, "failed to delete task")
		}
		return c.JSON(http.StatusOK, dto.DeleteResponse{Success: true})
	}
}
