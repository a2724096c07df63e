package save

import (
	"strings"
	"testing"

	"github.com/vovakirdan/coinstorm/internal/economy"
)

func TestSnapshotRoundTrip(t *testing.T) {
	stats := economy.Stats{
		Coins:    42,
		Damage:   3,
		FireRate: 2.5,
		Speed:    250,
		MaxHP:    4,
		HP:       2,
	}

	rec := Snapshot(120.5, 560, stats)

	data, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	var x, y float64
	var got economy.Stats
	decoded.Apply(&x, &y, &got)

	if x != 120.5 || y != 560 {
		t.Errorf("position = (%v, %v), expected (120.5, 560)", x, y)
	}
	if got != stats {
		t.Errorf("stats = %+v, expected %+v", got, stats)
	}
}

func TestApplyKeepsAbsentFields(t *testing.T) {
	// A record written before the fireRate field existed.
	data := []byte(`{"x":100,"coins":7,"damage":2}`)

	rec, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	x, y := 50.0, 560.0
	stats := economy.Stats{
		Coins:    0,
		Damage:   1,
		FireRate: 2,
		Speed:    220,
		MaxHP:    3,
		HP:       3,
	}
	rec.Apply(&x, &y, &stats)

	if x != 100 {
		t.Errorf("x = %v, expected 100 (present field applied)", x)
	}
	if y != 560 {
		t.Errorf("y = %v, expected 560 (absent field untouched)", y)
	}
	if stats.Coins != 7 || stats.Damage != 2 {
		t.Errorf("present fields not applied: %+v", stats)
	}
	if stats.FireRate != 2 || stats.Speed != 220 || stats.MaxHP != 3 || stats.HP != 3 {
		t.Errorf("absent fields were overwritten: %+v", stats)
	}
}

func TestApplyEmptyRecordIsNoOp(t *testing.T) {
	x, y := 1.0, 2.0
	stats := economy.Stats{Coins: 5, Damage: 1, FireRate: 2, Speed: 220, MaxHP: 3, HP: 3}
	before := stats

	Record{}.Apply(&x, &y, &stats)

	if x != 1 || y != 2 || stats != before {
		t.Error("empty record should leave everything unchanged")
	}
}

func TestEncodeOmitsAbsentFields(t *testing.T) {
	data, err := Encode(Record{})
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Encode(empty) = %s, expected {}", data)
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte(`{"x": "not a number"`))
	if err == nil {
		t.Fatal("Decode() should fail on malformed input")
	}
	if !strings.Contains(err.Error(), "malformed record") {
		t.Errorf("error = %q, expected it to mention a malformed record", err)
	}
}

func TestDecodeUnknownFieldsIgnored(t *testing.T) {
	rec, err := Decode([]byte(`{"coins":3,"futureField":true}`))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if rec.Coins == nil || *rec.Coins != 3 {
		t.Errorf("coins not decoded alongside unknown field: %+v", rec)
	}
}

func TestCoinsTruncatedToInt(t *testing.T) {
	rec, err := Decode([]byte(`{"coins":9.7}`))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	var x, y float64
	var stats economy.Stats
	rec.Apply(&x, &y, &stats)
	if stats.Coins != 9 {
		t.Errorf("coins = %d, expected 9 (fractional value truncated)", stats.Coins)
	}
}
