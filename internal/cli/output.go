package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/mcoot/tictactoe-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// JSON returns true when output is machine readable
func (o *Output) JSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.JSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.JSON() {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errW, string(data))
	} else {
		fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message. Nothing is printed in JSON mode.
func (o *Output) PrintMessage(format string, args ...any) {
	if o.JSON() {
		return
	}
	fmt.Fprintf(o.w, format+"\n", args...)
}

// PrintBoard draws the board, numbering empty squares 1-9. Nothing is
// printed in JSON mode.
func (o *Output) PrintBoard(board model.Board) {
	if o.JSON() {
		return
	}
	fmt.Fprint(o.w, renderBoard(board))
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case MatchResult:
		o.printMatchResult(v)
	case TallyResult:
		o.printTally(v)
	case SimulationResult:
		o.printSimulation(v)
	case Suggestion:
		o.printSuggestion(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// MatchResult describes one finished match
type MatchResult struct {
	ID      string `json:"id"`
	PlayerA string `json:"player_a"`
	PlayerB string `json:"player_b"`
	Status  string `json:"status"`
	Winner  string `json:"winner,omitempty"`
	Moves   []int  `json:"moves"`
	Board   string `json:"board"`
}

// TallyResult is the running score for a session
type TallyResult struct {
	Matches int            `json:"matches"`
	Draws   int            `json:"draws"`
	Wins    map[string]int `json:"wins"`
}

// SimulationResult summarises a batch of computer matches
type SimulationResult struct {
	Games   int    `json:"games"`
	PlayerA string `json:"player_a"`
	PlayerB string `json:"player_b"`
	WinsA   int    `json:"wins_a"`
	WinsB   int    `json:"wins_b"`
	Draws   int    `json:"draws"`
}

// Suggestion is the move a strategy chose for a position
type Suggestion struct {
	Board      string `json:"board"`
	Player     string `json:"player"`
	Difficulty string `json:"difficulty"`
	Move       int    `json:"move"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Result     string `json:"result"`
}

// keypad converts a position to the 1-9 number players type
func keypad(pos model.Position) int {
	return pos.Index() + 1
}

func newMatchResult(record *model.MatchRecord) MatchResult {
	result := MatchResult{
		ID:      string(record.ID),
		PlayerA: record.PlayerA.Label,
		PlayerB: record.PlayerB.Label,
		Status:  string(record.Outcome.Status),
		Moves:   make([]int, 0, len(record.Moves)),
	}
	if seat := record.WinnerSeat(); seat != nil {
		result.Winner = seat.Label
	}

	// Replay to recover the final position
	match := model.NewMatch()
	for _, pos := range record.Moves {
		result.Moves = append(result.Moves, keypad(pos))
		_, _ = match.ApplyMove(pos)
	}
	board := match.Board()
	result.Board = board.String()
	return result
}

func newTallyResult(tally model.Tally) TallyResult {
	return TallyResult{Matches: tally.Matches, Draws: tally.Draws, Wins: tally.Wins}
}

func renderBoard(board model.Board) string {
	var sb strings.Builder
	for row := 0; row < model.BoardSize; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}
		cells := make([]string, model.BoardSize)
		for col := 0; col < model.BoardSize; col++ {
			pos := model.Position{Row: row, Col: col}
			cell, _ := board.Get(pos)
			if cell == model.Empty {
				cells[col] = fmt.Sprint(keypad(pos))
			} else {
				cells[col] = cell.String()
			}
		}
		sb.WriteString(" " + strings.Join(cells, " | ") + "\n")
	}
	return sb.String()
}

func (o *Output) printMatchResult(r MatchResult) {
	switch {
	case r.Winner != "":
		fmt.Fprintf(o.w, "%s wins!\n", r.Winner)
	default:
		fmt.Fprintln(o.w, "It's a draw.")
	}
}

func (o *Output) printTally(t TallyResult) {
	fmt.Fprintf(o.w, "Matches: %d\n", t.Matches)
	for _, label := range slices.Sorted(maps.Keys(t.Wins)) {
		fmt.Fprintf(o.w, "  %s wins: %d\n", label, t.Wins[label])
	}
	fmt.Fprintf(o.w, "  Draws: %d\n", t.Draws)
}

func (o *Output) printSimulation(r SimulationResult) {
	fmt.Fprintf(o.w, "Played %d matches: %s vs %s\n", r.Games, r.PlayerA, r.PlayerB)
	fmt.Fprintf(o.w, "  %s wins: %d\n", r.PlayerA, r.WinsA)
	fmt.Fprintf(o.w, "  %s wins: %d\n", r.PlayerB, r.WinsB)
	fmt.Fprintf(o.w, "  Draws: %d\n", r.Draws)
}

func (o *Output) printSuggestion(s Suggestion) {
	fmt.Fprintf(o.w, "%s (%s) plays %d (row %d, col %d)\n", s.Player, s.Difficulty, s.Move, s.Row, s.Col)
}
