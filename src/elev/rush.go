package elev

import (
	"log/slog"
	"math/rand/v2"
)

type RushResult struct {
	Submitted int
	Accepted  int
	Rejected  int
}

// SimulateRush submits n random requests. Origins span the whole range, destinations
// skip the lowest floor, and pairs with equal floors are rejected like any other request.
func SimulateRush(s Submitter, rng *rand.Rand, n, minFloor, maxFloor int) RushResult {
	var result RushResult
	span := maxFloor - minFloor
	for range n {
		origin := minFloor + rng.IntN(span+1)
		destination := minFloor + 1 + rng.IntN(span)
		result.Submitted++
		if err := s.Submit(origin, destination); err != nil {
			result.Rejected++
			continue
		}
		result.Accepted++
	}
	slog.Info("Elevator rush submitted", "submitted", result.Submitted, "accepted", result.Accepted, "rejected", result.Rejected)
	return result
}
