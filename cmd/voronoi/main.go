package main

import (
	"context"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	voronoigame "github.com/osuushi/voronoigame"
	"github.com/osuushi/voronoigame/game"
	. "github.com/osuushi/voronoigame/geometry"
	"github.com/osuushi/voronoigame/render"
	"github.com/osuushi/voronoigame/scenario"
	"github.com/osuushi/voronoigame/strategy"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Plays the Voronoi game on scenarios stored as SVG files: the first polygon
// in the file is the board, and every circle is a user. Points on the command
// line are written "x,y" and may be fractions, like "1/3,2".
var (
	app     = kingpin.New("voronoi", "The two player Voronoi game on a simple polygon.")
	verbose = app.Flag("verbose", "Log what the solver is doing.").Short('v').Bool()

	playCmd      = app.Command("play", "Play optimally for both players, or only the second with --p1.")
	playScenario = playCmd.Arg("scenario", "Scenario SVG file.").Required().ExistingFile()
	playP1       = playCmd.Flag("p1", "First facility, instead of the optimal one.").String()
	playPNG      = playCmd.Flag("png", "Save a picture of the result to this file.").String()
	playImgcat   = playCmd.Flag("imgcat", "Show a picture of the result in the terminal.").Bool()
	playWorkers  = playCmd.Flag("workers", "Candidates to evaluate at once. Defaults to one per CPU.").Int()
	playAttempts = playCmd.Flag("attempts", "Plays each player gets before the game is abandoned.").Default("3").Int()

	regionsCmd      = app.Command("regions", "Show the regions hidden from a facility.")
	regionsScenario = regionsCmd.Arg("scenario", "Scenario SVG file.").Required().ExistingFile()
	regionsFacility = regionsCmd.Flag("facility", "Where the facility is.").Required().String()
	regionsPNG      = regionsCmd.Flag("png", "Save a picture of the regions to this file.").String()
	regionsImgcat   = regionsCmd.Flag("imgcat", "Show a picture of the regions in the terminal.").Bool()

	distanceCmd      = app.Command("distance", "Measure the shortest path between two points inside the polygon.")
	distanceScenario = distanceCmd.Arg("scenario", "Scenario SVG file.").Required().ExistingFile()
	distanceFrom     = distanceCmd.Flag("from", "Start of the path.").Required().String()
	distanceTo       = distanceCmd.Flag("to", "End of the path.").Required().String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		app.FatalIfError(err, "creating logger")
	}
	defer logger.Sync()

	var err error
	switch command {
	case playCmd.FullCommand():
		err = play(logger)
	case regionsCmd.FullCommand():
		err = regions()
	case distanceCmd.FullCommand():
		err = distance()
	}
	app.FatalIfError(err, "%s", command)
}

func play(logger *zap.Logger) error {
	s, err := scenario.LoadFile(*playScenario)
	if err != nil {
		return err
	}
	solver := &strategy.Solver{Logger: logger, Workers: *playWorkers}

	var first game.Player = game.StrategyPlayer{Solver: solver}
	if *playP1 != "" {
		p1, err := scenario.ParsePoint(*playP1)
		if err != nil {
			return err
		}
		first = game.FixedPlayer{Facility: p1}
	}

	g := game.New(s, logger)
	g.MaxAttempts = *playAttempts
	result, err := g.Play(context.Background(), first, game.StrategyPlayer{Solver: solver})
	if err != nil {
		return err
	}

	fmt.Printf("%s %s, %d users\n", aurora.Bold("Scenario"), s.Name, len(s.Users))
	fmt.Printf("%s %v\n", aurora.Red("P1"), result.P1)
	fmt.Printf("%s %v\n", aurora.Blue("P2"), result.P2)
	for _, claim := range result.Claims {
		var owner aurora.Value
		switch claim.Owner() {
		case 1:
			owner = aurora.Red("P1")
		case 2:
			owner = aurora.Blue("P2")
		default:
			owner = aurora.Faint("tie")
		}
		fmt.Printf("  %v: %s (%s vs %s)\n", claim.User, owner, claim.First, claim.Second)
	}
	switch result.Winner() {
	case 0:
		fmt.Printf("%s %d to %d\n", aurora.Bold("Draw"), result.Score1, result.Score2)
	default:
		fmt.Printf("%s %d to %d\n", aurora.Bold(fmt.Sprintf("P%d wins", result.Winner())), result.Score1, result.Score2)
	}

	owners := make([]int, len(result.Claims))
	for i, claim := range result.Claims {
		owners[i] = claim.Owner()
	}
	board := render.Board{
		Polygon:    s.Polygon,
		Users:      s.Users,
		Owners:     owners,
		Facilities: []Point{result.P1, result.P2},
	}
	return output(board, *playPNG, *playImgcat)
}

func regions() error {
	s, err := scenario.LoadFile(*regionsScenario)
	if err != nil {
		return err
	}
	facility, err := scenario.ParsePoint(*regionsFacility)
	if err != nil {
		return err
	}
	decomposition, err := voronoigame.Decompose(s.Polygon, facility)
	if err != nil {
		return err
	}

	fmt.Printf("%d regions hidden from %v\n", len(decomposition.Regions), facility)
	anchors := make([]Point, len(decomposition.Regions))
	for i, region := range decomposition.Regions {
		fmt.Printf("  %v\n", region)
		anchors[i] = region.Anchor
	}
	if len(anchors) > 0 {
		fmt.Printf("%s", aurora.Bold("Anchors:"))
		for _, anchor := range SortAround(anchors) {
			fmt.Printf(" %v", anchor)
		}
		fmt.Println()
	}

	board := render.Board{
		Polygon:    s.Polygon,
		Users:      s.Users,
		Facilities: []Point{facility},
		Regions:    decomposition.Regions,
	}
	return output(board, *regionsPNG, *regionsImgcat)
}

func distance() error {
	s, err := scenario.LoadFile(*distanceScenario)
	if err != nil {
		return err
	}
	from, err := scenario.ParsePoint(*distanceFrom)
	if err != nil {
		return err
	}
	to, err := scenario.ParsePoint(*distanceTo)
	if err != nil {
		return err
	}
	d, err := voronoigame.GeodesicDistance(from, to, s.Polygon)
	if err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", d, aurora.Green(fmt.Sprintf("%.6f", d.Float64())))
	return nil
}

func output(board render.Board, path string, show bool) error {
	if path == "" && !show {
		return nil
	}
	if path == "" {
		f, err := os.CreateTemp("", "voronoi-*.png")
		if err != nil {
			return err
		}
		f.Close()
		path = f.Name()
		defer os.Remove(path)
	}
	if err := board.SavePNG(path, 0); err != nil {
		return err
	}
	if show {
		return render.Cat(path, os.Stdout)
	}
	return nil
}
