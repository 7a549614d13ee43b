package elev

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"scanvator/src/dispatcher"
	"scanvator/src/types"

	"github.com/eiannone/keyboard"
)

type recordingSubmitter struct {
	requests []types.Request
	reject   func(origin, destination int) error
}

func (s *recordingSubmitter) Submit(origin, destination int) error {
	if s.reject != nil {
		if err := s.reject(origin, destination); err != nil {
			return err
		}
	}
	s.requests = append(s.requests, types.Request{Origin: origin, Destination: destination})
	return nil
}

func TestFormatEvent(t *testing.T) {
	testCases := []struct {
		ev   types.Event
		want string
	}{
		{types.Event{Kind: types.EvUnboard, Floor: 7}, "UN-BOARDING at Floor: 7"},
		{types.Event{Kind: types.EvBoard, Floor: 3, Destinations: []int{7}}, "BOARDING at Floor: 3"},
		{types.Event{Kind: types.EvMove, Floor: 4, Dir: types.DirUp}, "GOING UP TO 4"},
		{types.Event{Kind: types.EvMove, Floor: 2, Dir: types.DirDown}, "GOING DOWN TO 2"},
		{types.Event{Kind: types.EvIdle, Floor: 7}, "STOPPED at Floor: 7"},
		{types.Event{Kind: types.EvMalfunction, Floor: 1}, "Elevator Malfunctioned"},
	}
	for _, tc := range testCases {
		if got := FormatEvent(tc.ev); got != tc.want {
			t.Errorf("FormatEvent(%+v) = %q, want %q", tc.ev, got, tc.want)
		}
	}
}

func TestHandlerCompactsTimeAndSource(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, slog.LevelInfo))
	logger.Debug("hidden")
	logger.Info("visible", "floor", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered: %q", out)
	}
	if !strings.Contains(out, "source=elev_test.go:") || !strings.Contains(out, "floor=3") {
		t.Errorf("unexpected log line %q", out)
	}
}

func TestSimulateRushIsDeterministic(t *testing.T) {
	run := func() *recordingSubmitter {
		s := &recordingSubmitter{}
		SimulateRush(s, rand.New(rand.NewPCG(7, 7)), 30, 0, 10)
		return s
	}
	first, second := run(), run()
	if len(first.requests) != 30 {
		t.Fatalf("expected 30 requests, got %d", len(first.requests))
	}
	for i, req := range first.requests {
		if req != second.requests[i] {
			t.Fatalf("request %d differs between runs: %v vs %v", i, req, second.requests[i])
		}
		if req.Origin < 0 || req.Origin > 10 || req.Destination < 1 || req.Destination > 10 {
			t.Errorf("request %v outside generator range", req)
		}
	}
}

func TestSimulateRushCountsRejections(t *testing.T) {
	d, err := dispatcher.New(0, 10)
	if err != nil {
		t.Fatal(err)
	}
	mgr := StartStateMgr(d)
	defer mgr.Close()

	result := SimulateRush(mgr, rand.New(rand.NewPCG(3, 9)), 200, 0, 10)
	if result.Submitted != 200 || result.Accepted+result.Rejected != 200 {
		t.Errorf("inconsistent result %+v", result)
	}
	if result.Rejected == 0 {
		t.Error("expected some degenerate pairs among 200 random requests")
	}
	snap, err := mgr.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	waiting := 0
	for _, dests := range snap.Pending {
		waiting += len(dests)
	}
	if waiting != result.Accepted {
		t.Errorf("expected %d waiting riders, got %d", result.Accepted, waiting)
	}
}

func TestChooseMode(t *testing.T) {
	testCases := []struct {
		name  string
		chars []rune
		keys  []keyboard.Key
		want  types.Mode
	}{
		{"manual", []rune{'m'}, []keyboard.Key{0}, types.ModeManual},
		{"auto after noise", []rune{'x', 'A'}, []keyboard.Key{0, 0}, types.ModeAuto},
		{"quit", []rune{'q'}, []keyboard.Key{0}, types.ModeQuit},
		{"escape", []rune{0}, []keyboard.Key{keyboard.KeyEsc}, types.ModeQuit},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			i := 0
			getKey := func() (rune, keyboard.Key, error) {
				char, key := tc.chars[i], tc.keys[i]
				i++
				return char, key, nil
			}
			var out bytes.Buffer
			mode, err := ChooseMode(&out, getKey)
			if err != nil {
				t.Fatal(err)
			}
			if mode != tc.want {
				t.Errorf("expected %v, got %v", tc.want, mode)
			}
			if !strings.Contains(out.String(), "Press m") {
				t.Errorf("missing prompt in %q", out.String())
			}
		})
	}
}

func TestChooseModeKeyError(t *testing.T) {
	failing := func() (rune, keyboard.Key, error) { return 0, 0, errors.New("no tty") }
	if _, err := ChooseMode(&bytes.Buffer{}, failing); err == nil {
		t.Error("expected error from failing key reader")
	}
}

func TestParseMode(t *testing.T) {
	for input, want := range map[string]types.Mode{"manual": types.ModeManual, "AUTO": types.ModeAuto, "rush": types.ModeAuto} {
		if got, err := ParseMode(input); err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", input, got, err)
		}
	}
	if _, err := ParseMode("sideways"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestReadRequest(t *testing.T) {
	var out bytes.Buffer
	req, err := ReadRequest(bufio.NewReader(strings.NewReader("3\n7\n")), &out, 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if req != (types.Request{Origin: 3, Destination: 7}) {
		t.Errorf("unexpected request %v", req)
	}
	if !strings.Contains(out.String(), "Enter a starting floor (0 - 10)") ||
		!strings.Contains(out.String(), "Enter a destination floor (0 - 10)") {
		t.Errorf("missing prompts in %q", out.String())
	}

	if _, err := ReadRequest(bufio.NewReader(strings.NewReader("three\n")), &out, 0, 10); err == nil {
		t.Error("expected error for non-numeric floor")
	}
}

func TestFollowRequests(t *testing.T) {
	input := "1 4\n\nnot a request\n6 2\n9 9\n8 0"
	s := &recordingSubmitter{reject: func(origin, destination int) error {
		if origin == destination {
			return dispatcher.ErrDegenerateRequest
		}
		return nil
	}}
	accepted, err := FollowRequests(context.Background(), bufio.NewReader(strings.NewReader(input)), s)
	if err != nil {
		t.Fatal(err)
	}
	want := []types.Request{{Origin: 1, Destination: 4}, {Origin: 6, Destination: 2}, {Origin: 8, Destination: 0}}
	if accepted != len(want) || len(s.requests) != len(want) {
		t.Fatalf("expected %d accepted, got %d (%v)", len(want), accepted, s.requests)
	}
	for i := range want {
		if s.requests[i] != want[i] {
			t.Errorf("request %d: expected %v, got %v", i, want[i], s.requests[i])
		}
	}
}

func TestFollowRequestsStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := &recordingSubmitter{}
	accepted, err := FollowRequests(ctx, bufio.NewReader(strings.NewReader("1 2\n")), s)
	if !errors.Is(err, context.Canceled) || accepted != 0 || len(s.requests) != 0 {
		t.Errorf("expected cancellation before submitting, got %d, %v", accepted, err)
	}
}
