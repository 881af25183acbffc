package ziwei

import "fmt"

// FiveElementsBureau resolves the bureau from the year stem and the Life
// palace branch.
func FiveElementsBureau(yearStem Stem, life Branch) Bureau {
	b := bureauTable[yearStem%5][life/2]
	mustBureau(b)
	return b
}

func mustBureau(b Bureau) {
	if !b.Valid() {
		panic(fmt.Sprintf("ziwei: bureau %d outside enum", int(b)))
	}
}
