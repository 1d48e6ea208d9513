package geoloc

import "github.com/spacemeshos/locnet-idgen/log"

// Info is the subset of the ipinfo.io response we care about.
// Only Loc is required. Other fields are empty unless the service sent them as strings.
type Info struct {
	IP      string
	City    string
	Region  string
	Country string
	Loc     string
}

// Location holds coordinates exactly as the service reported them.
type Location struct {
	Latitude  string
	Longitude string
	IP        string
}

// MarshalLogObject implements logging encoder for Location.
func (l *Location) MarshalLogObject(encoder log.ObjectEncoder) error {
	encoder.AddString("latitude", l.Latitude)
	encoder.AddString("longitude", l.Longitude)
	if l.IP != "" {
		encoder.AddString("ip", l.IP)
	}
	return nil
}
