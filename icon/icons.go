package icon

// Icon identifies a status symbol.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Link
	Play
	Queue
	Warn
)

// symbols holds one rendering per variant, in variants order.
var symbols = map[Icon][len(variants)]string{
	Success:  {"✓", "🎉", "", "(ᵔ◡ᵔ)", "🟩"},
	Fail:     {"✗", "😵", "", "(╥﹏╥)", "🟥"},
	Progress: {"…", "⏳", "", "(・_・ヾ", "🟦"},
	Link:     {"~", "🔗", "", "(o^^)o", "🟫"},
	Play:     {">", "▶️", "", "ヽ(♪･ω･)ﾉ", "🟩"},
	Queue:    {"#", "📜", "", "(っ˘ڡ˘ς)", "🟧"},
	Warn:     {"!", "⚠️", "", "(°ロ°)", "🟨"},
}
