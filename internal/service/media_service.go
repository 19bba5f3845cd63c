package service

import (
	"InterVue/internal/pkg/consts"
	"InterVue/internal/repository"
	"bytes"
	"context"
	"fmt"
	"io"
	log "log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const (
	avatarMaxSize = 5 << 20
	resumeMaxSize = 10 << 20
	avatarSide    = 256
)

var resumeContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

type MediaService interface {
	UploadAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (string, error)
	UploadResume(ctx context.Context, userID string, file *multipart.FileHeader) (string, error)
}

type mediaServiceImpl struct {
	userRepo repository.UserRepo
	store    ObjectStore
}

func NewMediaService(userRepo repository.UserRepo, store ObjectStore) MediaService {
	return &mediaServiceImpl{userRepo: userRepo, store: store}
}

// UploadAvatar 裁剪为正方形 JPEG 缩略图后上传
func (s *mediaServiceImpl) UploadAvatar(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	if !strings.HasPrefix(file.Header.Get("Content-Type"), consts.MimePrefixImage) {
		return "", ErrFileNotSupported
	}
	if file.Size > avatarMaxSize {
		return "", ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func() {
		_ = src.Close()
	}()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		log.WarnContext(ctx, "decode avatar failed", "err", err)
		return "", ErrFileNotSupported
	}
	thumb := imaging.Fill(img, avatarSide, avatarSide, imaging.Center, imaging.Lanczos)

	buf := &bytes.Buffer{}
	if err = imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("avatars/%s/%s.jpg", userID, uuid.NewString())
	url, err := s.store.Upload(ctx, objectName, buf, int64(buf.Len()), "image/jpeg")
	if err != nil {
		return "", err
	}
	if err = s.userRepo.UpdateUserFields(ctx, userID, map[string]interface{}{"profile_url": url}); err != nil {
		return "", err
	}
	return url, nil
}

// UploadResume 对象名保留可读的原文件名
func (s *mediaServiceImpl) UploadResume(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := resumeContentTypes[ext]
	if !ok {
		return "", ErrFileNotSupported
	}
	if file.Size > resumeMaxSize {
		return "", ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func() {
		_ = src.Close()
	}()

	objectName := resumeObjectName(userID, file.Filename)
	url, err := s.store.Upload(ctx, objectName, io.LimitReader(src, resumeMaxSize), file.Size, contentType)
	if err != nil {
		return "", err
	}
	if err = s.userRepo.UpdateUserFields(ctx, userID, map[string]interface{}{"resume_url": url}); err != nil {
		return "", err
	}
	return url, nil
}

func resumeObjectName(userID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := slug.Make(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if base == "" {
		base = "resume"
	}
	return fmt.Sprintf("resumes/%s/%s-%s%s", userID, base, uuid.NewString()[:8], ext)
}
