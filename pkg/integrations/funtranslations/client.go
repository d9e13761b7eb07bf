package funtranslations

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/matzehuels/pokedex/pkg/integrations"
)

// DefaultBaseURL is the public FunTranslations endpoint.
const DefaultBaseURL = "https://api.funtranslations.com/translate"

// SecretHeader carries the API secret of a paid FunTranslations plan.
const SecretHeader = "X-Funtranslations-Api-Secret"

// Style selects a translation variant.
type Style string

// Supported translation styles.
const (
	StyleYoda        Style = "yoda"
	StyleShakespeare Style = "shakespeare"
)

// Result is a decoded translation response.
//
// Translated is nil when the upstream omitted the field or sent null; an
// empty string is a valid translation and is kept as-is.
type Result struct {
	Total       int     // success.total reported by the upstream
	Translated  *string // contents.translated
	Text        string  // contents.text, the text that was submitted
	Translation string  // contents.translation, the style the upstream applied
}

// OK reports whether the response carried a translated text.
func (r *Result) OK() bool {
	return r != nil && r.Translated != nil
}

// Client provides access to the FunTranslations API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
	secret  string
}

// NewClient creates a FunTranslations client.
//
// Parameters:
//   - baseURL: translation endpoint, usually [DefaultBaseURL]
//   - hc: HTTP client to send requests with (nil for the shared default)
//   - headers: default headers such as User-Agent (may be nil)
func NewClient(baseURL string, hc *http.Client, headers map[string]string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(hc, headers),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// WithSecret returns a copy of c that authenticates every translation with
// secret. An empty secret sends no [SecretHeader], which is the public,
// rate-limited tier.
func (c *Client) WithSecret(secret string) *Client {
	cp := *c
	cp.secret = secret
	return &cp
}

// Translate submits text for translation in the given style.
//
// Errors are returned for non-2xx responses ([integrations.StatusError]),
// bodies that are not the expected JSON object ([integrations.ErrDecode]),
// transport failures ([integrations.ErrNetwork]) and context errors. A
// well-formed response without a translated text is not an error; check
// [Result.OK].
//
// Exactly one request is made per call.
func (c *Client) Translate(ctx context.Context, style Style, text string) (*Result, error) {
	url := fmt.Sprintf("%s/%s.json?text=%s", c.baseURL, style, integrations.URLEncode(text))

	var headers map[string]string
	if c.secret != "" {
		headers = map[string]string{SecretHeader: c.secret}
	}

	var data apiResponse
	if err := c.GetWithHeaders(ctx, url, headers, &data); err != nil {
		return nil, err
	}

	result := &Result{}
	if data.Success != nil {
		result.Total = data.Success.Total
	}
	if data.Contents != nil {
		result.Translated = data.Contents.Translated
		result.Text = data.Contents.Text
		result.Translation = data.Contents.Translation
	}
	return result, nil
}

type apiResponse struct {
	Success  *apiSuccess  `json:"success"`
	Contents *apiContents `json:"contents"`
}

type apiSuccess struct {
	Total int `json:"total"`
}

type apiContents struct {
	Translated  *string `json:"translated"`
	Text        string  `json:"text"`
	Translation string  `json:"translation"`
}
