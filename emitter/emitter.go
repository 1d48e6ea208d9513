// Package emitter prints the locnet identity and location flags.
//
// The output is either the full flag set or, when the geolocation service
// answers with a non-200 status, the single line UnavailableMessage. Nothing
// is written on any other failure.
package emitter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spacemeshos/locnet-idgen/geoloc"
	"github.com/spacemeshos/locnet-idgen/identity"
	"github.com/spacemeshos/locnet-idgen/log"
)

// UnavailableMessage is printed instead of the flags when the service is unavailable.
const UnavailableMessage = "Failed to automatically fetch GPS coordinates"

// Flag names understood by iop-locnetd.
const (
	NodeIDFlag    = "--nodeid"
	LatitudeFlag  = "--latitude"
	LongitudeFlag = "--longitude"
	HostFlag      = "--host"
)

// Flags is the rendered snippet. Host is emitted only when non-empty.
type Flags struct {
	NodeID    identity.NodeID
	Latitude  string
	Longitude string
	Host      string
}

// WriteTo writes one "<flag> <value>" line per flag, in locnet order.
func (f Flags) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s\n", NodeIDFlag, f.NodeID)
	fmt.Fprintf(&buf, "%s %s\n", LatitudeFlag, f.Latitude)
	fmt.Fprintf(&buf, "%s %s\n", LongitudeFlag, f.Longitude)
	if f.Host != "" {
		fmt.Fprintf(&buf, "%s %s\n", HostFlag, f.Host)
	}
	return buf.WriteTo(w)
}

type Emitter struct {
	ids      nodeIDGenerator
	locator  locator
	logger   log.Log
	withHost bool
}

type Opt func(*Emitter)

func WithLogger(logger log.Log) Opt {
	return func(e *Emitter) {
		e.logger = logger
	}
}

// WithHost enables the --host line.
func WithHost(enabled bool) Opt {
	return func(e *Emitter) {
		e.withHost = enabled
	}
}

func New(ids nodeIDGenerator, loc locator, opts ...Opt) *Emitter {
	e := &Emitter{
		ids:     ids,
		locator: loc,
		logger:  log.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run generates a node id, fetches the location and writes the flags to w.
func (e *Emitter) Run(ctx context.Context, w io.Writer) error {
	id, err := e.ids.Generate()
	if err != nil {
		return log.ErrGenerateIdentity(err)
	}
	loc, err := e.locator.Locate(ctx)
	if errors.Is(err, geoloc.ErrUnavailable) {
		if _, werr := fmt.Fprintln(w, UnavailableMessage); werr != nil {
			return fmt.Errorf("write output: %w", werr)
		}
		return log.ErrLocate(err)
	}
	if err != nil {
		return log.ErrLocate(err)
	}

	flags := Flags{
		NodeID:    id,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}
	if e.withHost {
		if loc.IP == "" {
			e.logger.With().Warning("service reported no public address, omitting host flag")
		}
		flags.Host = loc.IP
	}
	if _, err := flags.WriteTo(w); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	e.logger.With().Info("emitted locnet flags", id, log.Inline(loc))
	return nil
}
