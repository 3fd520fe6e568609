package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/taskai-app/taskai-go/model"
)

func (c *Client) ListComments(ctx context.Context, taskID int) ([]model.Comment, error) {
	var comments []model.Comment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d/comments", taskID), "Failed to fetch comments", nil, &comments)
	return comments, err
}

// PostComment is fire-and-forget: the response body is not decoded on
// success.
func (c *Client) PostComment(ctx context.Context, taskID int, content string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/tasks/%d/comments", taskID), "Failed to post comment", func(req *resty.Request) {
		req.SetBody(map[string]string{"content": content})
	}, nil)
}
