package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetMetadataEndpoint returns the DynamoDB endpoint for chord metadata
// enrichment. Empty means enrichment is disabled.
func GetMetadataEndpoint() string {
	return os.Getenv("METADATA_ENDPOINT")
}

func GetMetadataTable() string {
	table := os.Getenv("METADATA_TABLE")
	if table != "" {
		return table
	}
	return "guitariz-chord-metadata"
}

// Engine defaults applied when callers pass non-positive option values.
const DefaultMaxCandidates = 5
const DefaultMinNotes = 2

// ExtraPenalty is the lenient-mode score cost per out-of-chord pitch class.
const ExtraPenalty = 12
