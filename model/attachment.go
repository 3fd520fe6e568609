package model

import (
	"time"

	"github.com/taskai-app/taskai-go/pkg/utils"
)

// Attachment is a file bound to exactly one task. This is the canonical
// shape; the backend has shipped two wire variants over time
// (filename/url/created_at vs file_name/file_url/uploaded_at), so decoding
// goes through an adapter that accepts both.
type Attachment struct {
	ID           int       `json:"id"`
	OriginalName string    `json:"original_name"`
	Filename     string    `json:"filename"`
	URL          string    `json:"url"`
	TaskID       int       `json:"task_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type attachmentWire struct {
	ID           int        `json:"id"`
	TaskID       int        `json:"task_id"`
	OriginalName string     `json:"original_name"`
	Filename     string     `json:"filename"`
	FileName     string     `json:"file_name"`
	URL          string     `json:"url"`
	FileURL      string     `json:"file_url"`
	CreatedAt    *time.Time `json:"created_at"`
	UploadedAt   *time.Time `json:"uploaded_at"`
}

func (a *Attachment) UnmarshalJSON(data []byte) error {
	var w attachmentWire
	if err := utils.Json.Unmarshal(data, &w); err != nil {
		return err
	}
	a.ID = w.ID
	a.TaskID = w.TaskID
	a.OriginalName = w.OriginalName
	a.Filename = firstNonEmpty(w.Filename, w.FileName)
	a.URL = firstNonEmpty(w.URL, w.FileURL)
	if w.CreatedAt != nil {
		a.CreatedAt = *w.CreatedAt
	} else if w.UploadedAt != nil {
		a.CreatedAt = *w.UploadedAt
	} else {
		a.CreatedAt = time.Time{}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
