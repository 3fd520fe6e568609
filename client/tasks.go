package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/taskai-app/taskai-go/model"
)

// DefaultRecommendationMode is used when Recommendations is called with an
// empty mode.
const DefaultRecommendationMode = "urgent"

func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := c.do(ctx, http.MethodGet, "/tasks/", "Failed to fetch tasks", nil, &tasks)
	return tasks, err
}

func (c *Client) GetTask(ctx context.Context, id int) (*model.Task, error) {
	var task model.Task
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), "Failed to fetch task details", nil, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (c *Client) CreateTask(ctx context.Context, task model.NewTask) (*model.Task, error) {
	var created model.Task
	err := c.do(ctx, http.MethodPost, "/tasks/", "Failed to create task", func(req *resty.Request) {
		req.SetBody(task)
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateTask sends a partial update; only the non-nil fields of updates are
// transmitted, the server merges them into the stored task.
func (c *Client) UpdateTask(ctx context.Context, id int, updates model.TaskUpdate) (*model.Task, error) {
	var updated model.Task
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), "Failed to update task", func(req *resty.Request) {
		req.SetBody(updates)
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), "Failed to delete task", nil, nil)
}

// Recommendations asks the backend for an AI-ranked task list. Known modes
// are "urgent", "balanced" and "quick_wins"; any string is forwarded as-is
// and an empty mode falls back to DefaultRecommendationMode.
func (c *Client) Recommendations(ctx context.Context, mode string) ([]model.Task, error) {
	if mode == "" {
		mode = DefaultRecommendationMode
	}
	var tasks []model.Task
	err := c.do(ctx, http.MethodGet, "/tasks/recommendations/", "Failed to fetch recommendations", func(req *resty.Request) {
		req.SetQueryParam("mode", mode)
	}, &tasks)
	return tasks, err
}
