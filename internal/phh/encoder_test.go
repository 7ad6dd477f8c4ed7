package phh_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/lox/tablestakes/internal/game"
	"github.com/lox/tablestakes/internal/phh"
	"github.com/lox/tablestakes/poker"
)

func TestFormatAction(t *testing.T) {
	tests := []struct {
		name      string
		seat      int
		action    game.Action
		committed int
		highest   int
		want      string
	}{
		{"fold", 0, game.Fold, 0, 10, "p1 f"},
		{"check", 1, game.Check, 0, 0, "p2 cc"},
		{"call", 3, game.Call, 50, 50, "p4 cc"},
		{"raise", 0, game.Raise, 120, 120, "p1 cbr 120"},
		{"short all-in raise", 2, game.Raise, 30, 50, "p3 cc"},
		{"unknown", 2, game.Action(9), 10, 10, "# p3 unknown 10"},
	}

	for _, tt := range tests {
		if got := phh.FormatAction(tt.seat, tt.action, tt.committed, tt.highest); got != tt.want {
			t.Fatalf("%s: got %q want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatCards(t *testing.T) {
	if got := phh.FormatCards(poker.MustParseCards("Ah Kh 10c")); got != "AhKhTc" {
		t.Fatalf("FormatCards=%q, want AhKhTc", got)
	}
	if got := phh.FormatCards(nil); got != "" {
		t.Fatalf("FormatCards(nil)=%q, want empty", got)
	}
}

func TestEncodeHandHistory(t *testing.T) {
	hand := &phh.HandHistory{
		Variant:           "NT",
		Table:             "default",
		SeatCount:         3,
		Seats:             []int{1, 2, 3},
		Antes:             []int{0, 0, 0},
		BlindsOrStraddles: []int{0, 0, 0},
		MinBet:            10,
		StartingStacks:    []int{100, 100, 100},
		FinishingStacks:   []int{120, 90, 90},
		Winnings:          []int{30, 0, 0},
		Actions: []string{
			"d dh p1 AhKh",
			"d dh p2 7c2d",
			"d dh p3 QsJs",
			"p1 cbr 10",
			"p2 f",
			"p3 f",
		},
		Players:   []string{"alice", "bot 1", "bot 2"},
		HandID:    "hand-00042",
		Time:      "15:22:00",
		TimeZone:  "UTC",
		Day:       14,
		Month:     11,
		Year:      2025,
		Timestamp: time.Date(2025, time.November, 14, 15, 22, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	if err := phh.Encode(&buf, hand); err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}

	got := buf.String()
	want := "" +
		"variant = \"NT\"\n" +
		"table = \"default\"\n" +
		"seat_count = 3\n" +
		"seats = [1, 2, 3]\n" +
		"antes = [0, 0, 0]\n" +
		"blinds_or_straddles = [0, 0, 0]\n" +
		"min_bet = 10\n" +
		"starting_stacks = [100, 100, 100]\n" +
		"finishing_stacks = [120, 90, 90]\n" +
		"winnings = [30, 0, 0]\n" +
		"actions = [\"d dh p1 AhKh\", \"d dh p2 7c2d\", \"d dh p3 QsJs\", \"p1 cbr 10\", \"p2 f\", \"p3 f\"]\n" +
		"players = [\"alice\", \"bot 1\", \"bot 2\"]\n" +
		"hand = \"hand-00042\"\n" +
		"time = \"15:22:00\"\n" +
		"time_zone = \"UTC\"\n" +
		"day = 14\n" +
		"month = 11\n" +
		"year = 2025\n"

	if got != want {
		t.Fatalf("Encode output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestEncodeNil(t *testing.T) {
	if err := phh.Encode(&bytes.Buffer{}, nil); err == nil {
		t.Fatal("expected error for nil hand")
	}
}
