package guardrail

import "regexp"

// speakerPattern matches the "[HH:MM] Name:" line prefix transcripts use.
var speakerPattern = regexp.MustCompile(`\[\d{2}:\d{2}\]\s*([A-Za-z]+)`)

// ExtractSpeakers returns the set of speaker names found in timestamped
// transcript lines.
func ExtractSpeakers(rawText string) map[string]struct{} {
	speakers := make(map[string]struct{})
	for _, match := range speakerPattern.FindAllStringSubmatch(rawText, -1) {
		speakers[match[1]] = struct{}{}
	}
	return speakers
}
