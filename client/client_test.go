package client_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskai-app/taskai-go/client"
	"github.com/taskai-app/taskai-go/model"
	"github.com/taskai-app/taskai-go/pkg/utils"
)

func newAPI(t *testing.T, handler http.Handler) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return client.New(srv.URL)
}

// fakeBackend is an in-memory /tasks/ implementation, enough for the
// round-trip tests.
type fakeBackend struct {
	mux    *http.ServeMux
	tasks  map[int]model.Task
	nextID int
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		mux:    http.NewServeMux(),
		tasks:  map[int]model.Task{},
		nextID: 1,
	}
	b.mux.HandleFunc("POST /tasks/", func(w http.ResponseWriter, r *http.Request) {
		var in model.NewTask
		if err := utils.Json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		now := time.Now().UTC().Truncate(time.Second)
		task := model.Task{
			ID:          b.nextID,
			Title:       in.Title,
			Description: in.Description,
			Priority:    in.Priority,
			Status:      in.Status,
			Progress:    in.Progress,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		b.nextID++
		b.tasks[task.ID] = task
		writeJSON(w, http.StatusOK, task)
	})
	b.mux.HandleFunc("GET /tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		task, ok := b.tasks[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, task)
	})
	return b
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mux.ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	data, _ := utils.Json.Marshal(v)
	w.Write(data)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	api := newAPI(t, newFakeBackend())
	ctx := context.Background()

	in := model.NewTask{
		Title:       "Ship the release",
		Description: "Cut and tag v1.2",
		Priority:    1,
		Status:      "in_progress",
		Progress:    40,
	}
	created, err := api.CreateTask(ctx, in)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())
	require.False(t, created.UpdatedAt.IsZero())

	got, err := api.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.Priority, got.Priority)
	assert.Equal(t, in.Status, got.Status)
	assert.Equal(t, in.Progress, got.Progress)
	assert.Equal(t, created.ID, got.ID)
}

func TestListTasks(t *testing.T) {
	now := time.Now().UTC()
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/tasks/", r.URL.Path)
		writeJSON(w, http.StatusOK, []model.Task{
			{ID: 1, Title: "a", CreatedAt: now, UpdatedAt: now},
			{ID: 2, Title: "b", CreatedAt: now, UpdatedAt: now, DeletedAt: &now},
		})
	}))

	tasks, err := api.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Nil(t, tasks[0].DeletedAt)
	assert.NotNil(t, tasks[1].DeletedAt)
}

func TestUpdateTaskSendsOnlyChangedFields(t *testing.T) {
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/tasks/7", r.URL.Path)
		var body map[string]any
		require.NoError(t, utils.Json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"status": "done"}, body)
		writeJSON(w, http.StatusOK, model.Task{ID: 7, Status: "done"})
	}))

	status := "done"
	updated, err := api.UpdateTask(context.Background(), 7, model.TaskUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "done", updated.Status)
}

func TestDeleteTask(t *testing.T) {
	var called bool
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/tasks/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, api.DeleteTask(context.Background(), 3))
	assert.True(t, called)
}

func TestRecommendationsDefaultsToUrgent(t *testing.T) {
	var gotMode string
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tasks/recommendations/", r.URL.Path)
		gotMode = r.URL.Query().Get("mode")
		writeJSON(w, http.StatusOK, []model.Task{{ID: 1, Title: "fix prod bug"}})
	}))

	tasks, err := api.Recommendations(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "urgent", gotMode)
	require.Len(t, tasks, 1)

	_, err = api.Recommendations(context.Background(), "quick_wins")
	require.NoError(t, err)
	assert.Equal(t, "quick_wins", gotMode)
}

func TestListComments(t *testing.T) {
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/tasks/5/comments", r.URL.Path)
		writeJSON(w, http.StatusOK, []model.Comment{
			{ID: 1, Content: "looks good", Author: model.User{ID: 9, Username: "ana"}, TaskID: 5},
		})
	}))

	comments, err := api.ListComments(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "ana", comments[0].Author.Username)
	assert.Equal(t, 5, comments[0].TaskID)
}

func TestPostCommentFireAndForget(t *testing.T) {
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/tasks/5/comments", r.URL.Path)
		var body map[string]string
		require.NoError(t, utils.Json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"content": "ship it"}, body)
		w.WriteHeader(http.StatusCreated)
	}))

	require.NoError(t, api.PostComment(context.Background(), 5, "ship it"))
}

func TestUploadAttachment(t *testing.T) {
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/tasks/4/attachments/", r.URL.Path)
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.png", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(content))
		writeJSON(w, http.StatusOK, map[string]any{
			"id":            11,
			"task_id":       4,
			"original_name": "photo.png",
			"filename":      "a1b2c3.png",
			"url":           "/uploads/a1b2c3.png",
			"created_at":    time.Now().UTC(),
		})
	}))

	created, err := api.UploadAttachment(context.Background(), 4, "photo.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)
	assert.Equal(t, "a1b2c3.png", created.Filename)
}

func TestListAttachmentsAcceptsBothWireShapes(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{
				"id": 1, "task_id": 4,
				"original_name": "report.pdf", "filename": "x1.pdf",
				"url": "/uploads/x1.pdf", "created_at": now,
			},
			{
				"id": 2, "task_id": 4,
				"original_name": "notes.txt", "file_name": "y2.txt",
				"file_url": "/uploads/y2.txt", "uploaded_at": now,
			},
		})
	}))

	attachments, err := api.ListAttachments(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, attachments, 2)
	for _, a := range attachments {
		assert.NotEmpty(t, a.Filename)
		assert.NotEmpty(t, a.URL)
		assert.Equal(t, now, a.CreatedAt)
	}
	assert.Equal(t, "y2.txt", attachments[1].Filename)
	assert.Equal(t, "/uploads/y2.txt", attachments[1].URL)
}

func TestDeleteAttachmentPrefersServerDetail(t *testing.T) {
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Attachment not found"})
	}))

	_, err := api.DeleteAttachment(context.Background(), 99)
	require.Error(t, err)
	var statusErr *client.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "Attachment not found", err.Error())
}

func TestDeleteAttachmentFallsBackOnMalformedBody(t *testing.T) {
	for name, body := range map[string]string{
		"not json":   "<html>boom</html>",
		"empty body": "",
		"no detail":  `{"error":"nope"}`,
	} {
		t.Run(name, func(t *testing.T) {
			api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				io.WriteString(w, body)
			}))

			_, err := api.DeleteAttachment(context.Background(), 1)
			require.Error(t, err)
			assert.Equal(t, "Failed to delete attachment", err.Error())
		})
	}
}

func TestDeleteAttachmentSuccessMessage(t *testing.T) {
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/attachments/11", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Attachment deleted"})
	}))

	msg, err := api.DeleteAttachment(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "Attachment deleted", msg)
}

func TestNon2xxAlwaysFails(t *testing.T) {
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	ctx := context.Background()

	ops := []struct {
		name string
		want string
		call func() error
	}{
		{"list tasks", "Failed to fetch tasks", func() error { _, err := api.ListTasks(ctx); return err }},
		{"get task", "Failed to fetch task details", func() error { _, err := api.GetTask(ctx, 1); return err }},
		{"create task", "Failed to create task", func() error { _, err := api.CreateTask(ctx, model.NewTask{Title: "x"}); return err }},
		{"update task", "Failed to update task", func() error { _, err := api.UpdateTask(ctx, 1, model.TaskUpdate{}); return err }},
		{"delete task", "Failed to delete task", func() error { return api.DeleteTask(ctx, 1) }},
		{"recommendations", "Failed to fetch recommendations", func() error { _, err := api.Recommendations(ctx, "urgent"); return err }},
		{"list comments", "Failed to fetch comments", func() error { _, err := api.ListComments(ctx, 1); return err }},
		{"post comment", "Failed to post comment", func() error { return api.PostComment(ctx, 1, "hi") }},
		{"list attachments", "Failed to fetch attachments", func() error { _, err := api.ListAttachments(ctx, 1); return err }},
		{"upload attachment", "Failed to upload attachment", func() error {
			_, err := api.UploadAttachment(ctx, 1, "f.txt", strings.NewReader("x"))
			return err
		}},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			err := op.call()
			require.Error(t, err)
			var statusErr *client.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
			assert.Equal(t, op.want, err.Error())
		})
	}
}

func TestTransportFailurePropagatesUnmodified(t *testing.T) {
	api := client.New("http://127.0.0.1:0")

	_, err := api.ListTasks(context.Background())
	require.Error(t, err)
	var statusErr *client.StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestAttachmentURLIsPureJoin(t *testing.T) {
	api := client.New("http://127.0.0.1:8000/")
	assert.Equal(t, "http://127.0.0.1:8000/uploads/photo.png", api.AttachmentURL("photo.png"))
}
