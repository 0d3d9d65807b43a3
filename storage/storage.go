package storage

import (
	"io"
	"net/http"

	"yatube/config"
)

// StorageAPI is what the upload and media handlers need from a media
// backend. Paths are relative (e.g. "posts/<name>.jpg").
type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
	GetFullPath(path string) string
}

var Instance StorageAPI

func Init() {
	if config.S3_BUCKET != "" {
		Instance = NewS3Storage()
		return
	}
	Instance = NewDiskStorage(config.MEDIA_DIR)
}
