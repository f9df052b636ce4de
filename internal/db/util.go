package db

// Firestore "in" queries accept at most 30 disjunctions.
const maxInClause = 30

func chunkIDs(ids []string) [][]string {
	var chunks [][]string
	for len(ids) > maxInClause {
		chunks = append(chunks, ids[:maxInClause])
		ids = ids[maxInClause:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}
