package fast2sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stockology/backend/pkg/sms"

	"github.com/pkg/errors"
)

const defaultBaseURL = "https://www.fast2sms.com/dev/bulkV2"

// Sender delivers SMS through the Fast2SMS bulk API.
type Sender struct {
	apiKey     string
	route      string
	baseURL    string
	httpClient *http.Client
}

type sendResponse struct {
	Return  bool   `json:"return"`
	Message string `json:"message"`
}

func NewSender(apiKey string, route string) (*Sender, error) {
	if apiKey == "" {
		return nil, errors.New("empty fast2sms api key")
	}

	if route == "" {
		route = "q"
	}

	return &Sender{
		apiKey:  apiKey,
		route:   route,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (s *Sender) Send(ctx context.Context, input sms.SendSMSInput) error {
	if err := input.Validate(); err != nil {
		return errors.Wrap(err, "invalid sms input")
	}

	form := url.Values{}
	form.Set("route", s.route)
	form.Set("numbers", strings.TrimPrefix(input.To, "+"))
	form.Set("message", input.Message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.Wrap(err, "build fast2sms request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "fast2sms request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("fast2sms responded with status %d", resp.StatusCode)
	}

	var body sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errors.Wrap(err, "decode fast2sms response")
	}

	if !body.Return {
		return errors.Errorf("fast2sms rejected message: %s", body.Message)
	}

	return nil
}
