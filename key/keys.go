// Package key names the configuration keys.
package key

const DefaultSources = "sources.default"

const (
	SearchResultsPerPage       = "search.results_per_page"
	SearchParallel             = "search.parallel"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Transport settings shared by every source.
const (
	NetworkRetries   = "network.retries"
	NetworkTimeout   = "network.timeout"
	NetworkBackoff   = "network.backoff"
	NetworkUserAgent = "network.user_agent"
)

const (
	Player      = "player.default"
	PlayerVideo = "player.video"
)

const HistorySaveOnPlay = "history.save_on_play"

// MiniTitleWidth caps the title column of the interactive listing.
const MiniTitleWidth = "mini.title_width"

const IconsVariant = "icons.variant"

const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
