package client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/taskai-app/taskai-go/model"
	"github.com/taskai-app/taskai-go/pkg/utils"
)

func (c *Client) ListAttachments(ctx context.Context, taskID int) ([]model.Attachment, error) {
	var attachments []model.Attachment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d/attachments/", taskID), "Failed to fetch attachments", nil, &attachments)
	return attachments, err
}

// UploadAttachment streams file as the multipart "file" field and binds the
// result to the given task.
func (c *Client) UploadAttachment(ctx context.Context, taskID int, filename string, file io.Reader) (*model.Attachment, error) {
	var created model.Attachment
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/tasks/%d/attachments/", taskID), "Failed to upload attachment", func(req *resty.Request) {
		req.SetFileReader("file", filename, file)
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteAttachment removes an attachment and returns the server's
// confirmation message. On a non-2xx status the error body is parsed
// defensively: a malformed or empty body degrades to an empty object and a
// "detail" field, when present, is preferred over the generic message.
func (c *Client) DeleteAttachment(ctx context.Context, id int) (string, error) {
	res, err := c.request(ctx, http.MethodDelete, fmt.Sprintf("/attachments/%d", id), nil)
	if err != nil {
		return "", err
	}
	if sc := res.StatusCode(); sc < 200 || sc > 299 {
		var body struct {
			Detail string `json:"detail"`
		}
		if err := utils.Json.Unmarshal(res.Body(), &body); err != nil {
			body.Detail = ""
		}
		msg := body.Detail
		if msg == "" {
			msg = "Failed to delete attachment"
		}
		return "", &StatusError{StatusCode: sc, Message: msg}
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := utils.Json.Unmarshal(res.Body(), &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// AttachmentURL resolves the static file URL for a stored filename. Pure
// string construction, never a network call.
func (c *Client) AttachmentURL(filename string) string {
	return c.base + "/uploads/" + filename
}
