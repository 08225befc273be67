package appconfig

import "os"

// applyEnv overlays the WFIRMA_* variables. A set variable beats the
// file value; unset variables leave it untouched.
func (c *Config) applyEnv() {
	overlay(&c.API.BaseURL, "WFIRMA_API_BASE")
	overlay(&c.API.CompanyID, "WFIRMA_COMPANY_ID")
	overlay(&c.API.AccessKey, "WFIRMA_ACCESS_KEY")
	overlay(&c.API.SecretKey, "WFIRMA_SECRET_KEY")
	overlay(&c.API.AppKey, "WFIRMA_APP_KEY")
	overlay(&c.API.OAuth2Token, "WFIRMA_OAUTH_TOKEN")
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
