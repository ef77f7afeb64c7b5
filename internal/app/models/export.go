package models

import "time"

type ExportObject struct {
	ObjectName string    `json:"object_name"`
	Size       int64     `json:"size"`
	Records    int       `json:"records"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}
