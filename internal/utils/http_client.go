package utils

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/publicsuffix"

	"github.com/MKhiriev/nim-client/internal/logger"
)

// MaxRedirects is the number of redirects followed before a request fails,
// matching the net/http default.
const MaxRedirects = 10

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient configured for talking to a
// cookie-session JSON API:
//   - an in-memory cookie jar (public-suffix aware) keeps session cookies
//     between calls made through the same client;
//   - retries are disabled, every call issues exactly one request;
//   - redirects are followed up to [MaxRedirects] times and never carry a
//     Referer header;
//   - resty's internal diagnostics go to log.
//
// Each call returns an independent client with its own jar and
// connection pool.
func NewHTTPClient(log *logger.Logger) (*HTTPClient, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	client := resty.New().
		SetCookieJar(jar).
		SetRetryCount(0).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(MaxRedirects), NoReferrerRedirectPolicy()).
		SetLogger(restyLogger{log: log})

	return &HTTPClient{Client: client}, nil
}

// NoReferrerRedirectPolicy strips the Referer header net/http adds to
// redirected requests.
func NoReferrerRedirectPolicy() resty.RedirectPolicy {
	return resty.RedirectPolicyFunc(func(req *http.Request, _ []*http.Request) error {
		req.Header.Del("Referer")
		return nil
	})
}

// restyLogger adapts *logger.Logger to resty.Logger.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("component", "resty").Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("component", "resty").Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("component", "resty").Msgf(format, v...)
}
