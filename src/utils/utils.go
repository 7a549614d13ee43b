package utils

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"scanvator/src/dispatcher"
)

// ForEachPickup is a helper function that visits waiting riders by ascending origin, in submission order per floor
func ForEachPickup(pending map[int][]int, action func(origin, destination int)) {
	for _, origin := range slices.Sorted(maps.Keys(pending)) {
		for _, destination := range pending[origin] {
			action(origin, destination)
		}
	}
}

// PrintStatus writes a one-line summary of the cabin
func PrintStatus(w io.Writer, snap dispatcher.Snapshot) {
	waiting := 0
	ForEachPickup(snap.Pending, func(_, _ int) {
		waiting++
	})
	fmt.Fprintf(w, "Floor: %d | Direction: %s | Waiting: %d | Drop-offs: %v\n",
		snap.Floor, snap.Dir, waiting, snap.Dropoffs)
}
