package portal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
	"wellness-wizard/internal/app/contracts"
	"wellness-wizard/internal/pkg/constvars"
	"wellness-wizard/internal/pkg/exceptions"
	"wellness-wizard/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type portalClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// NewPortalClient returns a client for the clinic portal REST backend.
// Every call is bounded by timeout in addition to the caller's context.
func NewPortalClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.PortalClient {
	return &portalClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Log:        logger,
	}
}

// envelope carries the success flag most portal responses include.
type envelope struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

func (e envelope) failed() bool {
	return e.Success != nil && !*e.Success
}

func (e envelope) reason() error {
	for _, candidate := range []string{e.Error, e.Detail, e.Message} {
		if candidate != "" {
			return errors.New(candidate)
		}
	}
	return nil
}

// do sends one request and returns the body of a 2xx response.
// 401 maps to AuthExpired, transport failures and 5xx to BackendUnavailable,
// any other non-2xx status to ValidationFailed.
func (c *portalClient) do(ctx context.Context, operation, method, path, token string, requestBody interface{}) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)

	var body io.Reader
	if requestBody != nil {
		requestJSON, err := json.Marshal(requestBody)
		if err != nil {
			c.Log.Error(operation+" error marshaling JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, body)
	if err != nil {
		c.Log.Error(operation+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestBody != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error(operation+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, path),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error(operation+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrReadBody(err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return bodyBytes, nil
	case resp.StatusCode == constvars.StatusUnauthorized:
		c.Log.Warn(operation+" unauthorized",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, path),
		)
		return nil, exceptions.ErrPortalUnauthorized(path)
	case resp.StatusCode >= 500:
		c.Log.Error(operation+" backend error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrPortalUnexpectedStatus(errorFromBody(bodyBytes), resp.StatusCode, path)
	default:
		c.Log.Warn(operation+" rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrPortalRejected(errorFromBody(bodyBytes), resp.StatusCode, path)
	}
}

// errorFromBody picks the reason out of an error response. Validation
// errors arrive as a detail list; the first message is enough.
func errorFromBody(body []byte) error {
	if !gjson.ValidBytes(body) {
		return nil
	}
	for _, field := range []string{"error", "detail", "message", "detail.0.msg"} {
		if reason := gjson.GetBytes(body, field); reason.Type == gjson.String && reason.Str != "" {
			return errors.New(reason.Str)
		}
	}
	return nil
}

func (c *portalClient) decode(operation, path string, body []byte, dst interface{}) error {
	if err := json.Unmarshal(body, dst); err != nil {
		c.Log.Error(operation+" error decoding response",
			zap.String(constvars.LoggingURLKey, path),
			zap.Error(err),
		)
		return exceptions.ErrPortalDecodeResponse(err, path)
	}
	return nil
}

// resolve turns a server-relative link into an absolute one.
func (c *portalClient) resolve(link string) string {
	if link == "" || strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	return c.BaseUrl + link
}
