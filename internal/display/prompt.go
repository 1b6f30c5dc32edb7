package display

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/minesurfer/internal/game"
	"github.com/lox/minesurfer/internal/session"
)

const promptHelp = `Commands:
  r ROW COL   reveal a cell
  f ROW COL   toggle a flag
  n           new game
  help        show this help
  q           quit`

// Prompt plays a session over line-oriented input.
type Prompt struct {
	session *session.Session
	in      *bufio.Scanner
	out     io.Writer
	logger  *log.Logger
}

// NewPrompt creates a prompt reading commands from in and writing boards and
// messages to out.
func NewPrompt(s *session.Session, in io.Reader, out io.Writer, logger *log.Logger) *Prompt {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Prompt{
		session: s,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger.WithPrefix("prompt"),
	}
}

// Run loops until the player quits or input ends.
func (p *Prompt) Run() error {
	p.printf("Welcome to Minesurfer! %s\n", p.session.Difficulty())
	p.printf("%s\n", promptHelp)
	if err := p.showBoard(); err != nil {
		return err
	}

	for {
		p.printf("> ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			p.printf("\n")
			return nil
		}

		cont, err := p.processCommand(p.in.Text())
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// processCommand handles one input line and reports whether to continue.
func (p *Prompt) processCommand(line string) (bool, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return true, nil
	}
	action, args := fields[0], fields[1:]
	p.logger.Debug("Processing command", "action", action, "args", args)

	switch action {
	case "quit", "q", "exit":
		return false, nil
	case "reveal", "r":
		return p.handleMove(args, p.session.Reveal)
	case "flag", "f":
		return p.handleMove(args, p.session.ToggleFlag)
	case "new", "n":
		return p.handleNew()
	case "help", "?":
		p.printf("%s\n", promptHelp)
		return true, nil
	default:
		p.printf("Unknown command: %s. Type 'help' for available commands.\n", action)
		return true, nil
	}
}

func (p *Prompt) handleMove(args []string, move func(int, int) (game.Outcome, error)) (bool, error) {
	row, col, err := parseCoords(args)
	if err != nil {
		p.printf("Error: %v\n", err)
		return true, nil
	}

	out, err := move(row, col)
	switch {
	case errors.Is(err, game.ErrOutOfBounds):
		g := p.session.Game()
		p.printf("Error: (%d,%d) is off the board (rows 0-%d, cols 0-%d)\n", row, col, g.Rows()-1, g.Cols()-1)
		return true, nil
	case errors.Is(err, game.ErrGameEnded):
		p.printf("The game is over. Type 'n' for a new game or 'q' to quit.\n")
		return true, nil
	case err != nil:
		return false, err
	}

	if err := p.showBoard(); err != nil {
		return false, err
	}
	switch {
	case out.GameWon:
		p.printf("%s Congratulations! You won in %s.\n", p.session.Banner(), p.session.Elapsed().Round(time.Second))
	case out.GameOver:
		p.printf("%s Game over! You hit a mine.\n", p.session.Banner())
	}
	return true, nil
}

func (p *Prompt) handleNew() (bool, error) {
	if err := p.session.Restart(); err != nil {
		return false, err
	}
	p.printf("New game: %s\n", p.session.Difficulty())
	return true, p.showBoard()
}

func (p *Prompt) showBoard() error {
	g := p.session.Game()
	p.printf("Mines left: %d\n", g.RemainingMines())
	return RenderBoard(p.out, g.Board())
}

func (p *Prompt) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func parseCoords(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected ROW COL, got %d arguments", len(args))
	}
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row %q", args[0])
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column %q", args[1])
	}
	return row, col, nil
}
