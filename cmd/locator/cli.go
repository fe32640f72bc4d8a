package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"github.com/dplocate/locator/internal/dispatcher"
	"github.com/dplocate/locator/internal/geo"
	"github.com/dplocate/locator/internal/location"
	"github.com/dplocate/locator/internal/panel"
	"github.com/dplocate/locator/internal/view"
)

const usage = `usage: locator <command> [args]

commands:
  validate               load the dataset and report accepted/dropped records
  bounds                 load the dataset and print the initial view
  search <query>         resolve a query and print the resulting view
  locate <lat,lng>       frame the given position at the locate radius
  navigate <id> [mode]   print the directions URI for a point (geo-uri|web-directions)
  toggle <id>            toggle a point's panel and print the widget ops
  street-view <id>       enter ground-level imagery at a point
  snapshot               load the dataset and persist it to the snapshot store
`

func (p *argProvider) CurrentPosition(ctx context.Context) (orb.Point, error) {
	if !p.pos.set {
		return orb.Point{}, location.ErrUnsupported
	}
	return p.pos.point, nil
}

type locationArg struct {
	point orb.Point
	set   bool
}

func runCLI(a *app, args []string) error {
	if len(args) == 0 {
		fmt.Print(usage)
		return nil
	}

	cmd := strings.ToLower(args[0])
	rest := args[1:]
	ctx := context.Background()

	// navigate may override the configured strategy before start
	if cmd == "navigate" && len(rest) > 1 {
		s := view.NavigationStrategy(rest[1])
		if !s.Valid() {
			return fmt.Errorf("unknown navigation mode: %s", rest[1])
		}
		a.controller.SetNavigation(s)
		rest = rest[:1]
	}

	// locate takes its position from the command line
	if cmd == "locate" {
		if len(rest) == 0 {
			return fmt.Errorf("locate: missing lat,lng")
		}
		pos, err := geo.ParseLatLng(rest[0])
		if err != nil {
			return fmt.Errorf("locate: %w", err)
		}
		a.provider.pos = locationArg{point: pos, set: true}
		rest = nil
	}

	if err := a.controller.Start(ctx); err != nil {
		return err
	}

	switch cmd {
	case "validate":
		return runValidate(a)
	case "bounds":
		return printOps(a)
	case "snapshot":
		return runSnapshot(a)
	case "search", "locate", "toggle", "navigate", "street-view":
		a.widget.Ops() // discard startup ops, show only this command's
		result, err := a.dispatcher.Dispatch(dispatcher.Event{Command: cmd, Args: rest})
		if err != nil {
			return err
		}
		fmt.Println(result)
		if err := printOps(a); err != nil {
			return err
		}
		if open := a.controller.Registry().OpenEntry(); open != nil {
			fmt.Println(panel.RenderHTML(panel.FromPoint(open.Point)))
		}
		return nil
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func runValidate(a *app) error {
	points := a.controller.Points()
	fmt.Printf("%d delivery points loaded\n", len(points))
	for _, p := range points {
		fmt.Printf("  %-12s %-30s %10.6f %11.6f\n", p.ID, p.Title(), p.Lat, p.Lng)
	}
	return nil
}

func runSnapshot(a *app) error {
	if a.snapshot == nil {
		return fmt.Errorf("no snapshot store configured (set storage.type)")
	}
	// Start already saved the fetched dataset; just report it
	fmt.Printf("%d delivery points snapshotted\n", len(a.controller.Points()))
	return nil
}

func printOps(a *app) error {
	for _, op := range a.widget.Ops() {
		fmt.Println(op)
	}
	return nil
}
