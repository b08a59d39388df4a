package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/repository"

	"github.com/google/uuid"
)

// SettingsService serves the login-page branding: background type and
// URL plus the logo. Branding reads are public; writes are admin-only.

type SettingsService struct {
	SettingRepo *repository.SettingRepository
	Storage     *StorageService
}

func NewSettingsService(settingRepo *repository.SettingRepository, storage *StorageService) *SettingsService {
	return &SettingsService{SettingRepo: settingRepo, Storage: storage}
}

// Branding returns all branding keys as a flat map, missing keys as
// empty strings so the client always gets a complete shape.
func (s *SettingsService) Branding() (map[string]string, error) {
	settings, err := s.SettingRepo.FindAll()
	if err != nil {
		return nil, err
	}
	branding := map[string]string{
		model.SettingLoginBackgroundType: "",
		model.SettingLoginBackgroundURL:  "",
		model.SettingLogoURL:             "",
	}
	for _, setting := range settings {
		if _, ok := branding[setting.Key]; ok {
			branding[setting.Key] = setting.Value
		}
	}
	return branding, nil
}

type BrandingRequest struct {
	LoginBackgroundType string `json:"loginBackgroundType"`
	LoginBackgroundURL  string `json:"loginBackgroundUrl"`
	LogoURL             string `json:"logoUrl"`
}

func (s *SettingsService) UpdateBranding(req *BrandingRequest) error {
	switch req.LoginBackgroundType {
	case "", "none", "image", "video":
	default:
		return errors.New("loginBackgroundType must be none, image or video")
	}

	updates := map[string]string{
		model.SettingLoginBackgroundType: req.LoginBackgroundType,
		model.SettingLoginBackgroundURL:  req.LoginBackgroundURL,
		model.SettingLogoURL:             req.LogoURL,
	}
	for key, value := range updates {
		if err := s.SettingRepo.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

var brandingContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"video/mp4":  true,
	"video/webm": true,
}

// UploadAsset stores a branding or profile asset and returns its URL.
func (s *SettingsService) UploadAsset(ctx context.Context, header *multipart.FileHeader, prefix string) (string, error) {
	contentType := header.Header.Get("Content-Type")
	if !brandingContentTypes[contentType] {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}
	if header.Size > 50<<20 {
		return "", errors.New("file exceeds the 50MB limit")
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	filename := fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
	return s.upload(ctx, filename, file, header.Size, contentType)
}

func (s *SettingsService) upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	return s.Storage.Upload(ctx, filename, reader, size, contentType)
}
