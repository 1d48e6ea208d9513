// Package geoloc looks up the approximate coordinates of this host from its
// public address using an ipinfo.io compatible HTTP service.
package geoloc

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/spacemeshos/locnet-idgen/log"
)

const (
	DefaultURI = "http://ipinfo.io/json"

	schemaURL = "https://ipinfo.io/locnet-idgen.schema.json"
)

var (
	// ErrUnavailable is returned when the service answers with a status other than 200.
	ErrUnavailable = errors.New("geolocation unavailable")
	// ErrMalformedResponse is returned when the body is not the expected JSON document.
	ErrMalformedResponse = errors.New("malformed geolocation response")
	// ErrMalformedLocation is returned when the loc field has no comma separator.
	ErrMalformedLocation = errors.New("malformed location")
)

//go:embed schema.json
var schema string

type Config struct {
	URI string `mapstructure:"endpoint"`
	// Timeout of the single request. Zero leaves the http client default.
	Timeout time.Duration `mapstructure:"timeout"`
}

func DefaultConfig() Config {
	return Config{
		URI: DefaultURI,
	}
}

// Locator fetches the host location with a single request, no retries.
type Locator struct {
	cfg    Config
	logger log.Log
	client httpclient
	schema *jsonschema.Schema
}

type Opt func(*Locator)

func WithConfig(cfg Config) Opt {
	return func(l *Locator) {
		l.cfg = cfg
	}
}

func WithLogger(logger log.Log) Opt {
	return func(l *Locator) {
		l.logger = logger
	}
}

func WithHttpclient(c httpclient) Opt {
	return func(l *Locator) {
		l.client = c
	}
}

func New(opts ...Opt) (*Locator, error) {
	l := &Locator{
		cfg:    DefaultConfig(),
		logger: log.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.client == nil {
		l.client = newRealClient(l.cfg.Timeout, l.logger.Zap())
	}
	sch, err := jsonschema.CompileString(schemaURL, schema)
	if err != nil {
		return nil, fmt.Errorf("compile geolocation json schema: %w", err)
	}
	l.schema = sch
	return l, nil
}

// Locate queries the service and returns the raw coordinates.
func (l *Locator) Locate(ctx context.Context) (*Location, error) {
	resource, err := url.Parse(l.cfg.URI)
	if err != nil {
		return nil, fmt.Errorf("parse geolocation uri: %w", err)
	}
	if resource.Scheme != "https" && resource.Scheme != "http" {
		return nil, fmt.Errorf("scheme not supported %v", resource.Scheme)
	}

	start := time.Now()
	status, data, err := l.client.Query(ctx, resource)
	if err != nil {
		return nil, err
	}
	l.logger.With().Debug("geolocation queried",
		log.Stringer("url", resource),
		log.Int("status", status),
		log.Duration("took", time.Since(start)),
	)
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: %s responded %d", ErrUnavailable, resource, status)
	}

	info, err := l.parse(data)
	if err != nil {
		return nil, err
	}
	lat, lon, err := SplitLocation(info.Loc)
	if err != nil {
		return nil, err
	}
	loc := &Location{Latitude: lat, Longitude: lon, IP: info.IP}
	l.logger.With().Info("fetched location", log.Inline(loc))
	return loc, nil
}

func (l *Locator) parse(data []byte) (*Info, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: body is not valid utf-8", ErrMalformedResponse)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after json document", ErrMalformedResponse)
	}
	if err := l.schema.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	// keys are matched exactly, the schema guarantees an object with a string loc
	doc := v.(map[string]any)
	return &Info{
		IP:      optionalString(doc, "ip"),
		City:    optionalString(doc, "city"),
		Region:  optionalString(doc, "region"),
		Country: optionalString(doc, "country"),
		Loc:     doc["loc"].(string),
	}, nil
}

// optionalString returns doc[key] when it is a string. Any other value is ignored.
func optionalString(doc map[string]any, key string) string {
	s, _ := doc[key].(string)
	return s
}

// SplitLocation splits "lat,lon" on the first comma. Both halves are
// returned verbatim, anything after the first comma belongs to longitude.
func SplitLocation(loc string) (latitude, longitude string, err error) {
	latitude, longitude, found := strings.Cut(loc, ",")
	if !found {
		return "", "", fmt.Errorf("%w: no comma in %q", ErrMalformedLocation, loc)
	}
	return latitude, longitude, nil
}
