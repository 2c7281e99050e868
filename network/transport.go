package network

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/constant"
	"github.com/webify-cli/webify/key"
	"github.com/webify-cli/webify/log"
	"golang.org/x/net/html/charset"
)

// Defaults of the transport policy.
const (
	DefaultRetries = 3
	DefaultTimeout = 7 * time.Second
	DefaultBackoff = time.Second
)

// StatusError reports a response with an HTTP error status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Transport performs GET requests with a fixed user agent, a per-attempt
// timeout and a bounded number of retries separated by a constant pause.
type Transport struct {
	Client    *http.Client
	UserAgent string
	Retries   uint
	Backoff   time.Duration
}

// New returns a transport with the default policy.
func New() *Transport {
	return &Transport{
		Client:    newClient(DefaultTimeout),
		UserAgent: constant.UserAgent,
		Retries:   DefaultRetries,
		Backoff:   DefaultBackoff,
	}
}

// NewFromConfig returns a transport configured from the network.* keys.
func NewFromConfig() *Transport {
	retries := viper.GetInt(key.NetworkRetries)
	if retries < 0 {
		retries = 0
	}

	return &Transport{
		Client:    newClient(time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second),
		UserAgent: viper.GetString(key.NetworkUserAgent),
		Retries:   uint(retries),
		Backoff:   time.Duration(viper.GetInt(key.NetworkBackoff)) * time.Millisecond,
	}
}

// Fetch GETs url and returns the body decoded as text. Any failure, including
// an HTTP error status, is retried until the budget is spent; the last error
// is returned.
func (t *Transport) Fetch(ctx context.Context, url string) (string, error) {
	entry := log.Fields(logrus.Fields{"url": url})

	body, err := backoff.Retry(ctx, func() (string, error) {
		return t.get(ctx, url)
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(t.Backoff)),
		backoff.WithMaxTries(t.Retries+1),
		backoff.WithNotify(func(err error, wait time.Duration) {
			entry.WithError(err).Debugf("retrying in %s", wait)
		}),
	)
	if err != nil {
		entry.WithError(err).Warn("request failed")
		return "", err
	}

	return body, nil
}

func (t *Transport) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("User-Agent", t.UserAgent)

	resp, err := t.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	reader, err := decoder(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	return string(body), nil
}

// decoder converts a body to UTF-8 when the Content-Type names another
// charset. Bodies without a named charset are taken as UTF-8 as is.
func decoder(body io.Reader, contentType string) (io.Reader, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}

	label := strings.ToLower(strings.TrimSpace(params["charset"]))
	if label == "" || label == "utf-8" || label == "utf8" {
		return body, nil
	}
	return charset.NewReaderLabel(label, body)
}
