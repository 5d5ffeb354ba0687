package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/grazeweb/my-eshop-app/config"
	"github.com/grazeweb/my-eshop-app/internal/dto"
	"github.com/grazeweb/my-eshop-app/pkg/errs"
	"github.com/grazeweb/my-eshop-app/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

var policyPrompts = map[string]string{
	"shipping": "Draft a shipping policy for an online store named %s. Cover processing times, delivery estimates, and shipping fees. Direct questions to %s.",
	"returns":  "Draft a returns and refunds policy for an online store named %s. Cover the return window, item condition requirements, and the refund process. Direct questions to %s.",
	"privacy":  "Draft a privacy policy for an online store named %s. Cover what customer data is collected, how it is used, and how it is protected. Direct questions to %s.",
}

type PolicyServiceImpl struct {
	config config.Config
	cb     *gobreaker.CircuitBreaker[[]byte]
}

func CreatePolicyService(config config.Config, cb *gobreaker.CircuitBreaker[[]byte]) PolicyService {
	return &PolicyServiceImpl{config: config, cb: cb}
}

func (s *PolicyServiceImpl) GeneratePolicy(ctx context.Context, req dto.PolicyRequest) (resp dto.PolicyResponse, err error) {
	promptTemplate, ok := policyPrompts[req.PolicyType]
	if !ok {
		return resp, errs.ErrClient
	}

	prompt := fmt.Sprintf(promptTemplate, s.config.StoreName, s.config.ContactEmail)

	reqBody, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GeneratePolicy").Msg("")
		return resp, errs.ErrInternalServer
	}

	body, err := s.cb.Execute(func() ([]byte, error) {
		httpReq := httpclient.HttpRequest{
			URL:    fmt.Sprintf("%s/api/v1/generate", s.config.TextGenerationHost),
			Method: http.MethodPost,
			Body:   reqBody,
			Headers: map[string]string{
				"Content-Type": "application/json",
			},
		}

		statusCode, respBody, err := httpclient.SendRequest(ctx, httpReq)
		if err != nil {
			return nil, err
		}

		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("text generation service returned non-OK status: %d", statusCode)
		}

		return respBody, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GeneratePolicy").Msg("")
		return resp, errs.ErrBadGateway
	}

	var generated struct {
		Text string `json:"text"`
	}
	if err = json.Unmarshal(body, &generated); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GeneratePolicy").Msg("")
		return resp, errs.ErrBadGateway
	}

	resp.PolicyType = req.PolicyType
	resp.Document = generated.Text

	return
}
