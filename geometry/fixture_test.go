package geometry

import (
	"embed"
	"log"
	"math/big"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. It is not a full svg
// parser. It finds the first polygon in the file and converts its points into
// exact rationals, so "9.5" is exactly 19/2. If anything goes wrong, it
// panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.
// Winding is kept as drawn.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coordinates := strings.Split(pointString, ",")
		if len(coordinates) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, ok := new(big.Rat).SetString(coordinates[0])
		if !ok {
			log.Fatalf("Invalid x value %q", coordinates[0])
		}
		y, ok := new(big.Rat).SetString(coordinates[1])
		if !ok {
			log.Fatalf("Invalid y value %q", coordinates[1])
		}
		points = append(points, Point{x, y})
	}
	return Polygon{Points: points}
}

var simpleFixtures = []string{"lshape", "comb", "star", "zigzag"}

func Square(size int64) Polygon {
	return NewPolygon(Pt(0, 0), Pt(size, 0), Pt(size, size), Pt(0, size))
}

func LShape() Polygon {
	return LoadFixture("lshape")
}

func Comb() Polygon {
	return LoadFixture("comb")
}

// Shorthand for a rational point, for the fractional coordinates that come out
// of cuts.
func RatPt(xNum, xDen, yNum, yDen int64) Point {
	return Point{big.NewRat(xNum, xDen), big.NewRat(yNum, yDen)}
}
