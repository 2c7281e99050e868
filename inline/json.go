package inline

import (
	"encoding/json"
)

// Item is one result in the inline output.
type Item struct {
	// Source is the id of the source the result came from.
	Source string `json:"source"`
	Title  string `json:"title"`
	// Link is the source-specific token of the result.
	Link string `json:"link"`
	// Stream is the resolved stream URL, set with --resolve.
	Stream string `json:"stream,omitempty"`
	// Error explains why resolution failed.
	Error string `json:"error,omitempty"`
}

type Output struct {
	Query  string   `json:"query"`
	Page   int      `json:"page"`
	Result []*Item  `json:"result"`
	Errors []string `json:"errors,omitempty"`
}

func asJson(output *Output) ([]byte, error) {
	if output.Result == nil {
		output.Result = []*Item{}
	}
	return json.Marshal(output)
}
