package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/windoze95/movierec/internal/controller"
	"github.com/windoze95/movierec/internal/view"
)

const helpText = `commands:
  register <username> <password>
  login <username> <password>
  logout
  whoami
  search <query>
  more
  recommend <movie id> [comment]
  recommended
  help
  quit`

// Shell reads commands line by line and drives a Controller.
type Shell struct {
	ctrl    *controller.Controller
	printer *Printer
	screen  view.Screen
}

// NewShell returns a Shell for ctrl printing through printer.
func NewShell(ctrl *controller.Controller, printer *Printer) *Shell {
	return &Shell{ctrl: ctrl, printer: printer, screen: view.NewScreen()}
}

// Screen returns the current search screen.
func (s *Shell) Screen() view.Screen {
	return s.screen
}

// Run loads the recommendation list, then executes commands from r until
// quit, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context, r io.Reader) error {
	s.Exec(ctx, "recommended")

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if quit := s.Exec(ctx, scanner.Text()); quit {
			return nil
		}
	}
	return scanner.Err()
}

// Exec runs a single command line. It reports whether the shell should exit.
// Failures have already been shown to the user by the controller.
func (s *Shell) Exec(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		s.printer.Line(helpText)
	case "register":
		if len(args) != 2 {
			s.printer.Alert("usage: register <username> <password>")
			return false
		}
		_ = s.ctrl.Register(ctx, args[0], args[1])
	case "login":
		if len(args) != 2 {
			s.printer.Alert("usage: login <username> <password>")
			return false
		}
		_ = s.ctrl.Login(ctx, args[0], args[1])
	case "logout":
		if err := s.ctrl.Logout(); err != nil {
			s.printer.Alert(err.Error())
		}
	case "whoami":
		user, err := s.ctrl.CurrentUser()
		if err != nil {
			s.printer.Alert(controller.MsgNotLoggedIn)
			return false
		}
		s.printer.Line("logged in as %s", user)
	case "search":
		query := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), fields[0]))
		if query == "" {
			s.printer.Alert("usage: search <query>")
			return false
		}
		s.showSearch(s.ctrl.NewSearch(ctx, s.screen, query))
	case "more":
		if s.screen.State.Query == "" || !s.screen.View.LoadMoreVisible {
			s.printer.Alert("nothing more to load")
			return false
		}
		s.showSearch(s.ctrl.LoadMore(ctx, s.screen))
	case "recommend":
		if len(args) < 1 {
			s.printer.Alert("usage: recommend <movie id> [comment]")
			return false
		}
		movieID, err := parseMovieID(args[0])
		if err != nil {
			s.printer.Alert(fmt.Sprintf("invalid movie id %q", args[0]))
			return false
		}
		comment := strings.Join(args[1:], " ")
		if recs, err := s.ctrl.AddRecommendation(ctx, movieID, comment); err == nil {
			s.printer.PrintRecommendations(recs)
		}
	case "recommended":
		if recs, err := s.ctrl.LoadRecommendedMovies(ctx); err == nil {
			s.printer.PrintRecommendations(recs)
		}
	default:
		s.printer.Alert(fmt.Sprintf("unknown command %q, type 'help'", cmd))
	}
	return false
}

func (s *Shell) showSearch(screen view.Screen, err error) {
	// stale or failed: the last rendered screen stays
	if err != nil {
		return
	}
	s.screen = screen
	s.printer.PrintSearch(screen.View)
}

// parseMovieID parses a positive movie id.
func parseMovieID(param string) (int, error) {
	parsed, err := strconv.ParseUint(param, 10, 31)
	if err != nil {
		return 0, err
	}
	if parsed == 0 {
		return 0, fmt.Errorf("movie id must be positive")
	}
	return int(parsed), nil
}
