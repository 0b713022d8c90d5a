package downloader

import "strings"

// expandChannelPattern turns a priority pattern like "BH[Z,N,E]" into the
// concrete channel codes BHZ, BHN, BHE. A pattern without a bracket group
// names a single channel.
func expandChannelPattern(pattern string) []string {
	open := strings.IndexByte(pattern, '[')
	end := strings.IndexByte(pattern, ']')
	if open < 0 || end < open {
		return []string{pattern}
	}
	prefix := pattern[:open]
	suffix := pattern[end+1:]
	var channels []string
	for _, component := range strings.Split(pattern[open+1:end], ",") {
		component = strings.TrimSpace(component)
		if component == "" {
			continue
		}
		channels = append(channels, prefix+component+suffix)
	}
	return channels
}
