package rules

const (
	// BirthNeighbors is the exact neighbor count that populates a vacant cell.
	BirthNeighbors = 3
	// MinSurvivors and MaxSurvivors bound the neighbor count a populated cell needs to stay populated.
	MinSurvivors = 2
	MaxSurvivors = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A populated cell stays populated with 2 or 3 populated neighbors and is vacated otherwise
(underpopulation below 2, overpopulation above 3). A vacant cell becomes populated with
exactly 3 populated neighbors.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= MinSurvivors && neighbors <= MaxSurvivors
	}
	return neighbors == BirthNeighbors
}
