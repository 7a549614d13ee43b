package elev

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"scanvator/src/types"

	"github.com/eiannone/keyboard"
)

// KeyReader reads one key press. keyboard.GetSingleKey satisfies it.
type KeyReader func() (rune, keyboard.Key, error)

// ChooseMode asks for a single key: m for manual, a for an automatic rush, q or Esc to quit.
func ChooseMode(w io.Writer, getKey KeyReader) (types.Mode, error) {
	fmt.Fprintln(w, "Press m for a manual request, a for an elevator rush, q to quit")
	for {
		char, key, err := getKey()
		if err != nil {
			return types.ModeQuit, fmt.Errorf("read key: %w", err)
		}
		switch {
		case key == keyboard.KeyEsc || key == keyboard.KeyCtrlC || char == 'q':
			return types.ModeQuit, nil
		case char == 'm' || char == 'M':
			return types.ModeManual, nil
		case char == 'a' || char == 'A':
			return types.ModeAuto, nil
		}
		slog.Debug("Ignoring key", "char", string(char), "key", key)
	}
}

func ParseMode(s string) (types.Mode, error) {
	switch strings.ToLower(s) {
	case "manual", "m":
		return types.ModeManual, nil
	case "auto", "a", "rush":
		return types.ModeAuto, nil
	}
	return types.ModeQuit, fmt.Errorf("unknown mode %q", s)
}

// ReadRequest prompts for a starting and a destination floor.
func ReadRequest(r *bufio.Reader, w io.Writer, minFloor, maxFloor int) (types.Request, error) {
	var req types.Request
	fmt.Fprintf(w, "Enter a starting floor (%d - %d)\n", minFloor, maxFloor)
	if _, err := fmt.Fscan(r, &req.Origin); err != nil {
		return req, fmt.Errorf("read starting floor: %w", err)
	}
	fmt.Fprintf(w, "Enter a destination floor (%d - %d)\n", minFloor, maxFloor)
	if _, err := fmt.Fscan(r, &req.Destination); err != nil {
		return req, fmt.Errorf("read destination floor: %w", err)
	}
	return req, nil
}

// FollowRequests submits "origin destination" lines from r until EOF or ctx ends,
// returning the number of accepted requests. Malformed lines are skipped.
func FollowRequests(ctx context.Context, r *bufio.Reader, s Submitter) (int, error) {
	accepted := 0
	for {
		line, err := r.ReadString('\n')
		if ctx.Err() != nil {
			return accepted, ctx.Err()
		}
		if strings.TrimSpace(line) != "" {
			var origin, destination int
			if _, scanErr := fmt.Sscan(line, &origin, &destination); scanErr != nil {
				slog.Warn("Malformed request line", "line", strings.TrimSpace(line), "err", scanErr)
			} else if submitErr := s.Submit(origin, destination); submitErr == nil {
				accepted++
			} else if errors.Is(submitErr, ErrMgrClosed) {
				return accepted, nil
			}
		}
		if errors.Is(err, io.EOF) {
			return accepted, nil
		}
		if err != nil {
			return accepted, fmt.Errorf("read request: %w", err)
		}
	}
}
