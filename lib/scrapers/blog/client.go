// Package blog talks to wordpress sites: the wp-json REST API for
// post retrieval and plain HEAD probes for link liveness.
package blog

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"time"

	"restaurant-locator/lib/restyutil"
	"restaurant-locator/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/blog")

const spoofedUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Client struct {
	// api is scoped to the blog's own host, probe follows links
	// anywhere on the web.
	api   *resty.Client
	probe *resty.Client
}

type ClientOptions struct {
	BaseUrl string
	// DebugDir, when set, dumps every request/response pair of the
	// api client to a file per message.
	DebugDir string
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	api := resty.New()
	api.SetBaseURL(baseUrl.Scheme + "://" + baseUrl.Host)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	api.SetCookieJar(jar)
	api.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(api.GetClient().Transport)
	api.SetHeader("user-agent", spoofedUserAgent)
	api.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	api.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(api, "scrapers/blog/http")
	if opts.DebugDir != "" {
		restyutil.InstrumentClient(api, nil, restyutil.NewFilesystemOutput(opts.DebugDir))
	}

	probe := resty.New()
	probe.SetHeader("user-agent", spoofedUserAgent)
	probe.SetTimeout(time.Second * 30)
	telemetry.InstrumentResty(probe, "scrapers/blog/probe")

	return &Client{api: api, probe: probe}, nil
}

// CheckLink issues a HEAD request against an absolute URL and
// reports the status code. A code of 0 means the request itself
// failed and nothing was heard back.
func (c *Client) CheckLink(ctx context.Context, href string) int {
	ctx, span := tracer.Start(ctx, "client:CheckLink")
	defer span.End()

	res, err := c.probe.R().
		SetContext(ctx).
		Head(href)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "head request failed")
		return 0
	}
	return res.StatusCode()
}

// PostsBySlug fetches the raw wp-json response for a post slug. The
// payload is returned verbatim so callers can persist exactly what
// the server said.
func (c *Client) PostsBySlug(ctx context.Context, slug string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "client:PostsBySlug")
	defer span.End()

	res, err := c.api.R().
		SetContext(ctx).
		SetQueryParam("slug", slug).
		Get("/wp-json/wp/v2/posts")
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch posts")
		return nil, err
	}
	if res.StatusCode() != 200 {
		err := fmt.Errorf("wp-json returned status %d", res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}
	return res.Body(), nil
}
