package client

import (
	"fmt"
	"regexp"
	"time"

	"github.com/mtlab/wfirma-go/pkg/internal/types"
)

type clientConfig struct {
	baseURL   string
	companyID string
	auth      authConfig
	headers   map[string]string
	timeout   time.Duration
	transport Transport
}

func (c *Client) snapshotConfig() clientConfig {
	c.configLock.Lock()
	cfg := clientConfig{
		baseURL:   c.baseURL,
		companyID: c.companyID,
		auth:      c.auth,
		timeout:   c.timeout,
		transport: c.transport,
	}
	if c.headers != nil {
		cfg.headers = make(map[string]string, len(c.headers))
		for k, v := range c.headers {
			cfg.headers[k] = v
		}
	}
	c.configLock.Unlock()
	return cfg
}

func (c *Client) snapshotLoggers() []types.Logger {
	c.loggersLock.Lock()
	loggers := append([]types.Logger(nil), c.loggers...)
	c.loggersLock.Unlock()
	return loggers
}

var headerValuePattern = regexp.MustCompile(`\r|\n`)

func validateHeaderValue(value string) error {
	if headerValuePattern.MatchString(value) {
		return fmt.Errorf("header contains unsupported character")
	}
	return nil
}
