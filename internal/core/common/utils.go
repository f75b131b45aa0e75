package common

import "strings"

const (
	jsonFenceOpen = "```json"
	fenceClose    = "```"
)

// StripCodeFence normalizes a raw LLM response before JSON parsing. It trims
// surrounding whitespace, drops a leading "```json" and a trailing "```",
// and trims again. Each marker is removed independently, so a response with
// only one of them still loses it.
func StripCodeFence(response string) string {
	out := strings.TrimSpace(response)
	out = strings.TrimPrefix(out, jsonFenceOpen)
	out = strings.TrimSuffix(out, fenceClose)
	return strings.TrimSpace(out)
}
