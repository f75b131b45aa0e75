package model

// Edge is a directed relationship between two concepts. From and To hold
// node ids.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}
