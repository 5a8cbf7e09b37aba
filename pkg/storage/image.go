// Package storage keeps recipe images on local disk.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"Foodgram/config"
	"Foodgram/pkg/errs"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

var allowedFormats = map[string]string{
	"jpeg": ".jpg",
	"png":  ".png",
	"gif":  ".gif",
	"webp": ".webp",
}

// ImageStore saves base64 data URIs and returns the public reference.
type ImageStore interface {
	Save(ctx context.Context, dataURI string) (string, error)
	Delete(ctx context.Context, ref string) error
}

var _ ImageStore = (*LocalImageStore)(nil)

type LocalImageStore struct {
	Dir       string
	URLPrefix string
	MaxSize   int64
	now       func() time.Time
}

func NewLocalImageStore(conf *config.Config) *LocalImageStore {
	return &LocalImageStore{
		Dir:       conf.Media.Dir,
		URLPrefix: conf.Media.URLPrefix,
		MaxSize:   conf.Limits.MaxImageSize,
		now:       time.Now,
	}
}

// Save 校验并落盘图片, 返回访问路径
func (s *LocalImageStore) Save(ctx context.Context, dataURI string) (string, error) {
	data, ext, err := s.decode(dataURI)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel := path.Join("recipes", s.now().Format("2006/01/02"), uuid.NewString()+ext)
	full := filepath.Join(s.Dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", errs.Infra("create media dir", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", errs.Infra("write image", err)
	}
	return strings.TrimRight(s.URLPrefix, "/") + "/" + rel, nil
}

// Delete removes a file previously returned by Save. Unknown refs are ignored.
func (s *LocalImageStore) Delete(_ context.Context, ref string) error {
	prefix := strings.TrimRight(s.URLPrefix, "/") + "/"
	if !strings.HasPrefix(ref, prefix) {
		return nil
	}
	rel := strings.TrimPrefix(ref, prefix)
	if strings.Contains(rel, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.Dir, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return errs.Infra("remove image", err)
	}
	return nil
}

func (s *LocalImageStore) decode(dataURI string) ([]byte, string, error) {
	header, payload, ok := strings.Cut(dataURI, ",")
	if !ok || !strings.HasPrefix(header, "data:image/") || !strings.HasSuffix(header, ";base64") {
		return nil, "", invalidImage("image must be a base64 data URI")
	}
	if int64(base64.StdEncoding.DecodedLen(len(payload))) > s.MaxSize+3 {
		return nil, "", invalidImage(fmt.Sprintf("image is larger than %d bytes", s.MaxSize))
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", invalidImage("image is not valid base64")
	}
	if int64(len(data)) > s.MaxSize {
		return nil, "", invalidImage(fmt.Sprintf("image is larger than %d bytes", s.MaxSize))
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", invalidImage("unsupported image type " + contentType)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", invalidImage("image cannot be decoded")
	}
	ext, ok := allowedFormats[strings.ToLower(format)]
	if !ok {
		return nil, "", invalidImage("unsupported image format " + format)
	}
	return data, ext, nil
}

func invalidImage(msg string) *errs.Error {
	return errs.InvalidField("image", errs.CodeInvalidField, msg)
}
