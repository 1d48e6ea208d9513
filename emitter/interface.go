package emitter

import (
	"context"

	"github.com/spacemeshos/locnet-idgen/geoloc"
	"github.com/spacemeshos/locnet-idgen/identity"
)

//go:generate mockgen -typed -package=emitter -destination=./mocks.go -source=./interface.go

type nodeIDGenerator interface {
	Generate() (identity.NodeID, error)
}

type locator interface {
	Locate(context.Context) (*geoloc.Location, error)
}
