package unified

import (
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	// Double-width runes: a byte-indexed cut would split one in half.
	in := "ウィッチャー3 ワイルドハント コンプリートエディション"
	out := truncate(in, 10)
	if !utf8.ValidString(out) {
		t.Errorf("truncated title is not valid UTF-8: %q", out)
	}
	if w := runewidth.StringWidth(out); w > 10 {
		t.Errorf("display width = %d, want at most 10", w)
	}
}

func TestTruncate_ShortTitleUnchanged(t *testing.T) {
	if got := truncate("Portal", 40); got != "Portal" {
		t.Errorf("truncate = %q, want unchanged", got)
	}
}
