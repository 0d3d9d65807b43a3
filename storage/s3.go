package storage

import (
	"io"
	"net/http"
	"strings"
	"time"

	"yatube/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	bucket   string
	s3Client *s3.S3
}

func NewS3Storage() *S3Storage {
	cfg := aws.NewConfig().WithRegion(config.S3_REGION)
	if creds := strings.SplitN(config.S3_AUTH, ":", 2); len(creds) == 2 {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(creds[0], creds[1], ""))
	}
	if config.S3_ENDPOINT != "" {
		cfg = cfg.WithEndpoint(config.S3_ENDPOINT).WithS3ForcePathStyle(true)
	}
	return &S3Storage{
		bucket:   config.S3_BUCKET,
		s3Client: s3.New(session.Must(session.NewSession(cfg))),
	}
}

// GetFullPath returns a local staging path in case of S3
func (s *S3Storage) GetFullPath(path string) string {
	return config.TMP_DIR + "/" + strings.ReplaceAll(path, "/", "_")
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
		Body:   reader,
	})
	// The uploader consumes the reader; size is not tracked for S3
	return 0, err
}

func (s *S3Storage) Load(path string, writer io.Writer) (int64, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(writer, resp.Body)
}

// Serve redirects to a short-lived presigned URL
func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	url, err := req.Presign(15 * time.Minute)
	if err != nil {
		http.Error(writer, "media unavailable", http.StatusInternalServerError)
		return
	}
	http.Redirect(writer, request, url, http.StatusFound)
}

func (s *S3Storage) Delete(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(path),
	})
	return err
}
