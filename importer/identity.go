package importer

import (
	"regexp"
	"strings"
)

type rowIdentity struct {
	id   string
	name string
}

// forwardFillIdentities resolves block-layout identities. The fingerprint
// export writes the employee ID and name only on the first row of each block;
// subsequent rows of the block leave both cells blank. A sequential scan
// carries the last seen values downward, so lazy and eager consumers see the
// same result.
func forwardFillIdentities(grid Grid, idColumn, nameColumn int) []rowIdentity {
	identities := make([]rowIdentity, len(grid))
	var lastID, lastName string
	for i, row := range grid {
		if id := cellValue(row, idColumn); id != "" {
			lastID = id
		}
		if name := cellValue(row, nameColumn); name != "" {
			lastName = name
		}
		identities[i] = rowIdentity{id: lastID, name: lastName}
	}
	return identities
}

// Flat-layout data rows repeat the employee ID on every row; header and
// footer rows don't look like IDs, so anything without five or more leading
// digits is filtered out.
var flatIDPattern = regexp.MustCompile(`^\d{5,}`)

func flatIdentities(grid Grid, idColumn, nameColumn int) []rowIdentity {
	identities := make([]rowIdentity, len(grid))
	for i, row := range grid {
		id := cellValue(row, idColumn)
		if !flatIDPattern.MatchString(id) {
			continue
		}
		identities[i] = rowIdentity{
			id:   id,
			name: cellValue(row, nameColumn),
		}
	}
	return identities
}

func (ri rowIdentity) valid() bool {
	return strings.TrimSpace(ri.id) != ""
}
