package downloader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/lasif-tools/cli/internal/quakeml"
)

// FetchQuakeML retrieves a moment tensor page from a SPUD-style web
// service and parses it as QuakeML. A page URL that does not serve
// QuakeML directly is retried with its /quakeml sub-resource.
func FetchQuakeML(ctx context.Context, url string) (*quakeml.Event, error) {
	client := resty.New().SetTimeout(time.Minute)
	defer client.Close()

	body, err := getBody(ctx, client, url)
	if err != nil {
		return nil, err
	}
	event, parseErr := quakeml.Parse(body)
	if parseErr == nil {
		return event, nil
	}

	if !strings.HasSuffix(url, "/quakeml") {
		body, err = getBody(ctx, client, strings.TrimRight(url, "/")+"/quakeml")
		if err == nil {
			if event, err := quakeml.Parse(body); err == nil {
				return event, nil
			}
		}
	}
	return nil, fmt.Errorf("%s does not serve a QuakeML document: %w", url, parseErr)
}

func getBody(ctx context.Context, client *resty.Client, url string) ([]byte, error) {
	resp, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("fetch %s: server returned %s", url, resp.Status())
	}
	return resp.Bytes(), nil
}
