package search

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"restaurant-locator/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("search")

const duckduckgoBaseUrl = "https://html.duckduckgo.com"

// DuckDuckGo queries the plain-HTML frontend, which works without
// javascript and returns results as ordinary anchor tags.
type DuckDuckGo struct {
	http *resty.Client
}

func NewDuckDuckGo() (*DuckDuckGo, error) {
	client := resty.New()
	client.SetBaseURL(duckduckgoBaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "search/http")

	return &DuckDuckGo{http: client}, nil
}

func (d *DuckDuckGo) Search(ctx context.Context, query string) ([]string, error) {
	ctx, span := tracer.Start(ctx, "duckduckgo:Search")
	defer span.End()

	res, err := d.http.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		Get("/html/")
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch results page")
		return nil, err
	}
	if res.StatusCode() != 200 {
		err := fmt.Errorf("search returned status %d", res.StatusCode())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	var results []string
	doc.Find("a.result__a").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		resolved := resolveRedirect(href)
		if resolved != "" {
			results = append(results, resolved)
		}
	})
	return results, nil
}

// resolveRedirect unwraps duckduckgo's /l/?uddg=<target> redirect
// links. Links that are not redirects pass through unchanged.
func resolveRedirect(href string) string {
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if !strings.HasPrefix(parsed.Path, "/l/") {
		if parsed.Scheme == "" {
			parsed.Scheme = "https"
		}
		return parsed.String()
	}
	target := parsed.Query().Get("uddg")
	if target == "" {
		return ""
	}
	return target
}
