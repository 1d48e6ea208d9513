package identity

//go:generate mockgen -typed -package=identity -destination=./mocks.go -source=./interface.go

// Source produces the random seed a node id is derived from.
type Source interface {
	Seed() (string, error)
}
