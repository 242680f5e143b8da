package scenario

import (
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/voronoigame/geometry"
	"github.com/pkg/errors"
)

// A board to play on: a simple polygon and the users that live inside it.
type Scenario struct {
	Name    string
	Polygon geometry.Polygon
	Users   []geometry.Point
}

// Scenarios are stored as SVG. The first <polygon> is the board, and the
// centre of every <circle> is a user. Anything else in the file is ignored, so
// a scenario renders as a picture of itself in any browser. Coordinates are
// parsed exactly, so "0.1" is one tenth.
func Load(r io.Reader) (*Scenario, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing scenario svg")
	}

	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.Wrap(geometry.ErrInvalidInput, "scenario has no polygon")
	}
	points, err := parsePoints(polygons[0].Attributes["points"])
	if err != nil {
		return nil, err
	}

	var users []geometry.Point
	for _, circle := range root.FindAll("circle") {
		user, err := parsePoint(circle.Attributes["cx"], circle.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle centre")
		}
		users = append(users, user)
	}

	scenario := &Scenario{Name: root.Attributes["id"], Polygon: geometry.Polygon{Points: points}, Users: users}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return scenario, nil
}

func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scenario, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	if scenario.Name == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

// SVG points lists separate pairs with whitespace and coordinates with a comma
// or whitespace.
func parsePoints(attribute string) ([]geometry.Point, error) {
	fields := strings.Fields(strings.ReplaceAll(attribute, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Wrapf(geometry.ErrInvalidInput, "odd number of coordinates in %q", attribute)
	}
	points := make([]geometry.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		p, err := parsePoint(fields[i], fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// Parse "x,y" as an exact point, as it is written on the command line.
func ParsePoint(s string) (geometry.Point, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 2 {
		return geometry.Point{}, errors.Wrapf(geometry.ErrInvalidInput, "point %q is not x,y", s)
	}
	return parsePoint(strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]))
}

func parsePoint(x, y string) (geometry.Point, error) {
	xRat, ok := new(big.Rat).SetString(x)
	if !ok {
		return geometry.Point{}, errors.Wrapf(geometry.ErrInvalidInput, "bad coordinate %q", x)
	}
	yRat, ok := new(big.Rat).SetString(y)
	if !ok {
		return geometry.Point{}, errors.Wrapf(geometry.ErrInvalidInput, "bad coordinate %q", y)
	}
	return geometry.Point{X: xRat, Y: yRat}, nil
}

// Check that the scenario can be played: at least three vertices, at least one
// user, and every user strictly inside the polygon. A self intersecting
// polygon is untangled first, so Validate may replace Polygon.
func (s *Scenario) Validate() (err error) {
	defer func() {
		if recoveredErr := geometry.HandlePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()

	s.Polygon = geometry.RemoveSelfIntersections(s.Polygon)
	if len(s.Users) == 0 {
		return errors.Wrap(geometry.ErrInvalidInput, "scenario has no users")
	}
	for _, user := range s.Users {
		if !s.Polygon.Contains(user) {
			return errors.Wrapf(geometry.ErrInvalidInput, "user %v is not strictly inside the polygon", user)
		}
	}
	return nil
}
