package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dplocate/locator/internal/dispatcher"
	"github.com/dplocate/locator/internal/location"
	"github.com/dplocate/locator/internal/search"
)

// UI command names routed through the dispatcher.
const (
	CmdSearch     = "search"
	CmdLocate     = "locate"
	CmdReset      = "reset"
	CmdToggle     = "toggle"
	CmdNavigate   = "navigate"
	CmdStreetView = "street-view"
)

// RegisterHandlers binds the session operations to their UI commands. All
// handlers run synchronously so results and user messages flow back to the
// dispatch site.
func (c *Controller) RegisterHandlers(d *dispatcher.Dispatcher) {
	d.Register(CmdSearch, c.handleSearch, dispatcher.Logged())
	d.Register(CmdLocate, c.handleLocate, dispatcher.Logged())
	d.Register(CmdReset, c.handleReset, dispatcher.Logged())
	d.Register(CmdToggle, c.handleToggle, dispatcher.Logged())
	d.Register(CmdNavigate, c.handleNavigate, dispatcher.Logged())
	d.Register(CmdStreetView, c.handleStreetView, dispatcher.Logged())
}

func (c *Controller) handleSearch(e dispatcher.Event) (any, error) {
	query := strings.Join(e.Args, " ")
	m, err := c.Search(context.Background(), query)
	if err != nil {
		if search.IsNoMatch(err) {
			return "Location not found. Please try a different search.", nil
		}
		return nil, err
	}
	return fmt.Sprintf("Found: %s", m.Label), nil
}

func (c *Controller) handleLocate(e dispatcher.Event) (any, error) {
	if err := c.Locate(context.Background()); err != nil {
		if errors.Is(err, ErrNotReady) {
			return nil, err
		}
		return location.UserMessage(err), nil
	}
	return "Showing your area", nil
}

func (c *Controller) handleReset(e dispatcher.Event) (any, error) {
	if err := c.Reset(); err != nil {
		return nil, err
	}
	return "View reset", nil
}

func (c *Controller) handleToggle(e dispatcher.Event) (any, error) {
	if len(e.Args) == 0 {
		return nil, fmt.Errorf("toggle: missing point id")
	}
	if err := c.Toggle(e.Args[0]); err != nil {
		return nil, err
	}
	return "ok", nil
}

func (c *Controller) handleNavigate(e dispatcher.Event) (any, error) {
	if len(e.Args) == 0 {
		return nil, fmt.Errorf("navigate: missing point id")
	}
	return c.Navigate(e.Args[0])
}

func (c *Controller) handleStreetView(e dispatcher.Event) (any, error) {
	if len(e.Args) == 0 {
		return nil, fmt.Errorf("street-view: missing point id")
	}
	if err := c.StreetView(e.Args[0]); err != nil {
		return nil, err
	}
	return "ok", nil
}
