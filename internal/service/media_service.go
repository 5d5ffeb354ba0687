package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/grazeweb/my-eshop-app/config"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/grazeweb/my-eshop-app/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

type MediaServiceImpl struct {
	config config.Config
	cb     *gobreaker.CircuitBreaker[[]byte]
}

func CreateMediaService(config config.Config, cb *gobreaker.CircuitBreaker[[]byte]) MediaService {
	return &MediaServiceImpl{config: config, cb: cb}
}

func (s *MediaServiceImpl) UploadProductImage(ctx context.Context, filename string, content []byte) (url string, err error) {
	contentType := http.DetectContentType(content)
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/webp" && contentType != "image/gif" {
		return "", errs.ErrNotAnImage
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UploadProductImage").Msg("")
		return "", errs.ErrInternalServer
	}

	if _, err = part.Write(content); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UploadProductImage").Msg("")
		return "", errs.ErrInternalServer
	}

	if err = writer.Close(); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UploadProductImage").Msg("")
		return "", errs.ErrInternalServer
	}

	body, err := s.cb.Execute(func() ([]byte, error) {
		httpReq := httpclient.HttpRequest{
			URL:    fmt.Sprintf("%s/api/v1/media", s.config.BlobStorageHost),
			Method: http.MethodPost,
			Body:   buf.Bytes(),
			Headers: map[string]string{
				"Content-Type": writer.FormDataContentType(),
			},
		}

		statusCode, respBody, err := httpclient.SendRequest(ctx, httpReq)
		if err != nil {
			return nil, err
		}

		if statusCode != http.StatusOK && statusCode != http.StatusCreated {
			return nil, fmt.Errorf("blob storage returned non-OK status: %d", statusCode)
		}

		return respBody, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UploadProductImage").Msg("")
		return "", errs.ErrBadGateway
	}

	var mediaResp dto.MediaResponse
	if err = json.Unmarshal(body, &mediaResp); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UploadProductImage").Msg("")
		return "", errs.ErrBadGateway
	}

	return mediaResp.URL, nil
}
