package classifier

// Quintile maps a value onto an ordinal bucket 1..5 against four ascending
// boundaries. Binning is right-closed: a value equal to a boundary belongs
// to the lower bucket; values beyond the last boundary land in bucket 5.
func Quintile(value float64, bounds [4]float64) int {
	for i, b := range bounds {
		if value <= b {
			return i + 1
		}
	}
	return 5
}
