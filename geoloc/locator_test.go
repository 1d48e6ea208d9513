package geoloc_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spacemeshos/locnet-idgen/geoloc"
	"github.com/spacemeshos/locnet-idgen/log/logtest"
)

const ipinfoResponse = `
{
  "ip": "203.0.113.7",
  "city": "Mountain View",
  "region": "California",
  "country": "US",
  "loc": "37.3861,-122.0839",
  "org": "AS15169 Google LLC",
  "postal": "94035",
  "timezone": "America/Los_Angeles"
}
`

func serve(tb testing.TB, status int, body string) (*httptest.Server, *atomic.Int32) {
	tb.Helper()
	var queries atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queries.Add(1)
		require.Equal(tb, http.MethodGet, r.Method)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	tb.Cleanup(ts.Close)
	return ts, &queries
}

func newLocator(tb testing.TB, uri string) *geoloc.Locator {
	tb.Helper()
	cfg := geoloc.DefaultConfig()
	cfg.URI = uri
	l, err := geoloc.New(geoloc.WithConfig(cfg), geoloc.WithLogger(logtest.New(tb)))
	require.NoError(tb, err)
	return l
}

func TestLocate(t *testing.T) {
	ts, queries := serve(t, http.StatusOK, ipinfoResponse)
	loc, err := newLocator(t, ts.URL).Locate(context.Background())
	require.NoError(t, err)
	require.Equal(t, &geoloc.Location{
		Latitude:  "37.3861",
		Longitude: "-122.0839",
		IP:        "203.0.113.7",
	}, loc)
	require.EqualValues(t, 1, queries.Load())
}

func TestLocateResponses(t *testing.T) {
	tcs := []struct {
		desc   string
		status int
		body   string
		lat    string
		lon    string
		err    error
	}{
		{
			desc:   "minimal",
			status: http.StatusOK,
			body:   `{"loc":"37.3861,-122.0839"}`,
			lat:    "37.3861",
			lon:    "-122.0839",
		},
		{
			desc:   "split on first comma",
			status: http.StatusOK,
			body:   `{"loc":"10.5,20.25,extra"}`,
			lat:    "10.5",
			lon:    "20.25,extra",
		},
		{
			desc:   "verbatim",
			status: http.StatusOK,
			body:   `{"loc":" 91.0 ,abc"}`,
			lat:    " 91.0 ",
			lon:    "abc",
		},
		{
			desc:   "exact key",
			status: http.StatusOK,
			body:   `{"loc":"1.5,2.5","LOC":"9,9","Loc":"8,8"}`,
			lat:    "1.5",
			lon:    "2.5",
		},
		{
			desc:   "other fields of any type",
			status: http.StatusOK,
			body:   `{"loc":"37.3861,-122.0839","city":null,"region":1,"country":{"code":"US"},"ip":false}`,
			lat:    "37.3861",
			lon:    "-122.0839",
		},
		{
			desc:   "not found",
			status: http.StatusNotFound,
			body:   `{"loc":"37.3861,-122.0839"}`,
			err:    geoloc.ErrUnavailable,
		},
		{
			desc:   "rate limited",
			status: http.StatusTooManyRequests,
			body:   "Rate limit exceeded",
			err:    geoloc.ErrUnavailable,
		},
		{
			desc:   "no content",
			status: http.StatusNoContent,
			err:    geoloc.ErrUnavailable,
		},
		{
			desc:   "no comma",
			status: http.StatusOK,
			body:   `{"loc":"37.3861"}`,
			err:    geoloc.ErrMalformedLocation,
		},
		{
			desc:   "missing loc",
			status: http.StatusOK,
			body:   `{"ip":"203.0.113.7","bogon":true}`,
			err:    geoloc.ErrMalformedResponse,
		},
		{
			desc:   "loc not a string",
			status: http.StatusOK,
			body:   `{"loc":[37.3861,-122.0839]}`,
			err:    geoloc.ErrMalformedResponse,
		},
		{
			desc:   "not json",
			status: http.StatusOK,
			body:   `<html>hello</html>`,
			err:    geoloc.ErrMalformedResponse,
		},
		{
			desc:   "not an object",
			status: http.StatusOK,
			body:   `"37.3861,-122.0839"`,
			err:    geoloc.ErrMalformedResponse,
		},
		{
			desc:   "trailing data",
			status: http.StatusOK,
			body:   `{"loc":"37.3861,-122.0839"} {"loc":"1,2"}`,
			err:    geoloc.ErrMalformedResponse,
		},
		{
			desc:   "invalid utf-8",
			status: http.StatusOK,
			body:   "{\"loc\":\"37.3861,\xff\xfe\"}",
			err:    geoloc.ErrMalformedResponse,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.desc, func(t *testing.T) {
			ts, queries := serve(t, tc.status, tc.body)
			loc, err := newLocator(t, ts.URL).Locate(context.Background())
			require.EqualValues(t, 1, queries.Load())
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Nil(t, loc)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.lat, loc.Latitude)
			require.Equal(t, tc.lon, loc.Longitude)
		})
	}
}

func TestLocateOptionalFields(t *testing.T) {
	for _, tc := range []struct {
		desc string
		body string
		ip   string
	}{
		{desc: "string ip", body: `{"ip":"203.0.113.7","loc":"37.3861,-122.0839"}`, ip: "203.0.113.7"},
		{desc: "null ip", body: `{"ip":null,"city":null,"loc":"37.3861,-122.0839"}`},
		{desc: "numeric ip", body: `{"ip":3405803783,"region":1,"loc":"37.3861,-122.0839"}`},
		{desc: "upper case key", body: `{"IP":"203.0.113.7","loc":"37.3861,-122.0839"}`},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			ts, _ := serve(t, http.StatusOK, tc.body)
			loc, err := newLocator(t, ts.URL).Locate(context.Background())
			require.NoError(t, err)
			require.Equal(t, &geoloc.Location{Latitude: "37.3861", Longitude: "-122.0839", IP: tc.ip}, loc)
		})
	}
}

func TestLocateNoRetry(t *testing.T) {
	ts, queries := serve(t, http.StatusServiceUnavailable, "")
	_, err := newLocator(t, ts.URL).Locate(context.Background())
	require.ErrorIs(t, err, geoloc.ErrUnavailable)
	require.EqualValues(t, 1, queries.Load())
}

func TestLocateTransportError(t *testing.T) {
	ts, _ := serve(t, http.StatusOK, ipinfoResponse)
	uri := ts.URL
	ts.Close()

	_, err := newLocator(t, uri).Locate(context.Background())
	require.Error(t, err)
	require.False(t, errors.Is(err, geoloc.ErrUnavailable))
}

func TestLocateTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()
	defer close(release)

	cfg := geoloc.Config{URI: ts.URL, Timeout: 50 * time.Millisecond}
	l, err := geoloc.New(geoloc.WithConfig(cfg), geoloc.WithLogger(logtest.New(t)))
	require.NoError(t, err)
	_, err = l.Locate(context.Background())
	require.Error(t, err)
	require.False(t, errors.Is(err, geoloc.ErrUnavailable))
}

func TestLocateCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := geoloc.NewMockhttpclient(ctrl)
	client.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *url.URL) (int, []byte, error) {
			<-ctx.Done()
			return 0, nil, ctx.Err()
		})

	l, err := geoloc.New(geoloc.WithHttpclient(client))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = l.Locate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLocateQueriesConfiguredURI(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := geoloc.NewMockhttpclient(ctrl)
	client.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, resource *url.URL) (int, []byte, error) {
			require.Equal(t, geoloc.DefaultURI, resource.String())
			return http.StatusOK, []byte(ipinfoResponse), nil
		})

	l, err := geoloc.New(geoloc.WithHttpclient(client))
	require.NoError(t, err)
	loc, err := l.Locate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "37.3861", loc.Latitude)
}

func TestLocateBadURI(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := geoloc.NewMockhttpclient(ctrl)

	for _, uri := range []string{"ftp://ipinfo.io/json", "://bad"} {
		l, err := geoloc.New(geoloc.WithConfig(geoloc.Config{URI: uri}), geoloc.WithHttpclient(client))
		require.NoError(t, err)
		_, err = l.Locate(context.Background())
		require.Error(t, err)
	}
}

func TestSplitLocation(t *testing.T) {
	lat, lon, err := geoloc.SplitLocation("37.3861,-122.0839")
	require.NoError(t, err)
	require.Equal(t, "37.3861", lat)
	require.Equal(t, "-122.0839", lon)

	lat, lon, err = geoloc.SplitLocation(",")
	require.NoError(t, err)
	require.Empty(t, lat)
	require.Empty(t, lon)

	_, _, err = geoloc.SplitLocation("")
	require.ErrorIs(t, err, geoloc.ErrMalformedLocation)
}

func TestSplitLocationFirstComma(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 200; i++ {
		var lat, lon string
		f.Fuzz(&lat)
		f.Fuzz(&lon)
		lat = strings.ReplaceAll(lat, ",", "")

		gotLat, gotLon, err := geoloc.SplitLocation(lat + "," + lon)
		require.NoError(t, err)
		require.Equal(t, lat, gotLat)
		require.Equal(t, lon, gotLon)
	}
}
