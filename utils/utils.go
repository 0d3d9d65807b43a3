package utils

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"
)

// Sha512String hashes and encodes in hex the result
func Sha512String(s string) string {
	hash := sha512.New()
	hash.Write([]byte(s))
	return hex.EncodeToString(hash.Sum(nil))
}

func RandSalt(saltSize int) string {
	b := make([]byte, saltSize)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

// CreateThumb re-encodes the image as a JPEG thumbnail that fits in a
// size x size box and returns the number of bytes written.
func CreateThumb(size uint, reader io.Reader, writer io.Writer) (int64, error) {
	img, _, err := image.Decode(reader)
	if err != nil {
		return 0, err
	}
	thumb := resize.Thumbnail(size, size, img, resize.Lanczos3)
	counter := &countingWriter{out: writer}
	if err = jpeg.Encode(counter, thumb, &jpeg.Options{Quality: 90}); err != nil {
		return 0, err
	}
	return counter.written, nil
}

type countingWriter struct {
	out     io.Writer
	written int64
}

func (w *countingWriter) Write(b []byte) (int, error) {
	n, err := w.out.Write(b)
	w.written += int64(n)
	return n, err
}
