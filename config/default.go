package config

import (
	"github.com/webify-cli/webify/constant"
	"github.com/webify-cli/webify/key"
)

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("config: key registered twice: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.DefaultSources, []string{}, "Sources to search, by ID, in registration order.\nEmpty means every builtin source.\nType \"webify sources list\" to show available sources")
	register(key.SearchResultsPerPage, 5, "Number of results requested from each source per page")
	register(key.SearchParallel, true, "Query sources concurrently. Result order is unaffected")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.NetworkRetries, 3, "How many times a failed request is retried")
	register(key.NetworkTimeout, 7, "Timeout of a single request attempt, in seconds")
	register(key.NetworkBackoff, 1000, "Pause between request attempts, in milliseconds")
	register(key.NetworkUserAgent, constant.UserAgent, "User-Agent header sent to every source")
	register(key.Player, "mpv", "Media player to use")
	register(key.PlayerVideo, true, "Show video. When false audio only is played")
	register(key.HistorySaveOnPlay, true, "Save played items to history")
	register(key.MiniTitleWidth, 70, "Maximum title width in the result listing")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, false, "Enable automatic version check")
}
