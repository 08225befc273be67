package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
	"github.com/mtlab/wfirma-go/pkg/internal/xmlcodec"
)

// do executes one API call and returns the decoded document.
//
// The HTTP status alone never decides success: any non-empty body is parsed
// and judged by its embedded status code. Only an empty body falls back to
// the transport status.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body []byte) (xmlcodec.Map, error) {
	cfg := c.snapshotConfig()

	query := buildQuery(cfg, params)

	reqCtx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	endpoint := cfg.baseURL + path + "?" + query.Encode()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	c.NotifyLoggers(types.DebugLevel, "%s => level: DEBUG, event: Request, result: PENDING, method: %s, path: %s, bodyBytes: %d => Dispatching request", c.componentMetadata, method, path, len(body))

	req, err := http.NewRequestWithContext(reqCtx, method, endpoint, reader)
	if err != nil {
		c.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, event: Request, result: FAILURE, method: %s, path: %s, error: %v => Failed to create HTTP request", c.componentMetadata, method, path, err)
		return nil, &types.TransportError{StatusCode: 0, Err: err, Message: "failed to create HTTP request"}
	}
	applyHeaders(req, cfg)

	resp, err := cfg.transport.Do(req)
	if err != nil {
		c.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, event: Request, result: FAILURE, method: %s, path: %s, error: %v => Request execution failed", c.componentMetadata, method, path, err)
		return nil, &types.TransportError{StatusCode: 0, Err: err, Message: "http request execution failed"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, event: Response, result: FAILURE, method: %s, path: %s, statusCode: %d, error: %v => Failed to read response body", c.componentMetadata, method, path, resp.StatusCode, err)
		return nil, &types.TransportError{StatusCode: resp.StatusCode, Err: err, Message: "failed to read response body"}
	}

	content := bytes.TrimSpace(raw)
	if len(content) == 0 {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			c.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, event: Response, result: FAILURE, method: %s, path: %s, statusCode: %d => HTTP error without body", c.componentMetadata, method, path, resp.StatusCode)
			return nil, &types.TransportError{StatusCode: resp.StatusCode, Message: "HTTP error without body"}
		}
		c.NotifyLoggers(types.DebugLevel, "%s => level: DEBUG, event: Response, result: SUCCESS, method: %s, path: %s, statusCode: %d => Empty body, substituting NO_CONTENT", c.componentMetadata, method, path, resp.StatusCode)
		return xmlcodec.NoContentDocument(), nil
	}

	doc, err := xmlcodec.DecodeDocument(bytes.NewReader(content))
	if err != nil {
		c.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, event: Response, result: FAILURE, method: %s, path: %s, statusCode: %d, error: %v => Failed to parse XML", c.componentMetadata, method, path, resp.StatusCode, err)
		return nil, &types.ParseError{StatusCode: resp.StatusCode, Err: err, Raw: content}
	}

	if code, ok := xmlcodec.StatusCode(doc); ok && !xmlcodec.IsSuccess(code) {
		c.NotifyLoggers(types.WarnLevel, "%s => level: WARN, event: Response, result: FAILURE, method: %s, path: %s, statusCode: %d, apiStatus: %s => API reported failure", c.componentMetadata, method, path, resp.StatusCode, code)
		return nil, &types.APIError{StatusCode: resp.StatusCode, Code: code, Payload: doc}
	}

	c.NotifyLoggers(types.DebugLevel, "%s => level: DEBUG, event: Response, result: SUCCESS, method: %s, path: %s, statusCode: %d => Request complete", c.componentMetadata, method, path, resp.StatusCode)
	return doc, nil
}

// buildQuery merges the fixed parameters with caller-supplied ones. Callers
// may override the company or oauth parameters, but the format flags always
// end up xml: the decoder understands nothing else.
func buildQuery(cfg clientConfig, params url.Values) url.Values {
	query := url.Values{}
	if cfg.companyID != "" {
		query.Set("company_id", cfg.companyID)
	}
	if cfg.auth.bearerMode() {
		query.Set("oauth_version", "2")
	}
	for key, values := range params {
		for _, v := range values {
			query.Set(key, v)
		}
	}
	query.Set("inputFormat", "xml")
	query.Set("outputFormat", "xml")
	return query
}

func applyHeaders(req *http.Request, cfg clientConfig) {
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("Content-Type", "application/xml; charset=utf-8")
	for key, value := range cfg.headers {
		req.Header.Set(key, value)
	}
	if cfg.auth.bearerMode() {
		req.Header.Set("Authorization", "Bearer "+cfg.auth.bearer)
		return
	}
	req.Header.Set("accessKey", cfg.auth.accessKey)
	req.Header.Set("secretKey", cfg.auth.secretKey)
	req.Header.Set("appKey", cfg.auth.appKey)
}
