package content

import (
	"math"
	"net/url"
	"sort"
	"strconv"
)

// Store is a pharmacy or shop selling menstrual products.
type Store struct {
	Name       string  `yaml:"name" json:"name" validate:"required"`
	Type       string  `yaml:"type" json:"type" validate:"required"`
	Latitude   float64 `yaml:"latitude" json:"latitude" validate:"latitude"`
	Longitude  float64 `yaml:"longitude" json:"longitude" validate:"longitude"`
	Address    string  `yaml:"address" json:"address" validate:"required"`
	DistanceKm float64 `yaml:"distance_km" json:"distance_km" validate:"gte=0"`
}

// Position returns the store location.
func (s Store) Position() Position {
	return Position{Latitude: s.Latitude, Longitude: s.Longitude}
}

// DirectionsURL returns a maps link routing to the store.
func (s Store) DirectionsURL() string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", formatLatLng(s.Position()))
	return "https://www.google.com/maps/dir/?" + q.Encode()
}

// AllStores returns a copy of the store list in catalog order, with the
// distances recorded in the catalog.
func (c *Catalog) AllStores() []Store {
	out := make([]Store, len(c.Stores))
	copy(out, c.Stores)
	return out
}

// NearbyStores returns the stores sorted by distance from origin, with
// DistanceKm recomputed and rounded to 0.1 km. Ties keep catalog order.
func (c *Catalog) NearbyStores(origin Position) ([]Store, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}

	out := c.AllStores()
	for i := range out {
		out[i].DistanceKm = math.Round(DistanceKm(origin, out[i].Position())*10) / 10
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out, nil
}

func formatLatLng(p Position) string {
	return strconv.FormatFloat(p.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(p.Longitude, 'f', -1, 64)
}
