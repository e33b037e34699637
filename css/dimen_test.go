package css_test

import (
	"testing"

	"github.com/npillmayer/layel/css"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	if du, ok := ten.Just(); !ok || du != 10*dimen.PT {
		t.Errorf("expected Just(10pt) to be a fixed value of 10pt, isn't: %#v", ten)
	}
	auto := css.Auto()
	if auto.Keyword() != "auto" {
		t.Errorf("expected dimen auto to be keyword auto, isn't: %#v", auto)
	}
}

func TestDimenParse(t *testing.T) {
	d, ok := css.Parse("12px")
	if !ok {
		t.Fatalf("expected 12px to parse, didn't")
	}
	if du, fixed := d.Just(); !fixed || du != 12*css.PX {
		t.Errorf("expected 12px to be a fixed value of 12px, is %v", du)
	}

	d, ok = css.Parse("10pt")
	if !ok {
		t.Fatalf("expected 10pt to parse, didn't")
	}
	if du, fixed := d.Just(); !fixed || du != 10*dimen.PT {
		t.Errorf("expected 10pt to be a fixed value of 10pt, is %v", du)
	}

	d, ok = css.Parse("80%")
	if !ok {
		t.Fatalf("expected 80%% to parse, didn't")
	}
	if _, pct := d.Percent(); !pct {
		t.Errorf("expected 80%% to be a percentage, isn't: %#v", d)
	}

	d, ok = css.Parse("8")
	if !ok {
		t.Fatalf("expected bare number to parse, didn't")
	}
	if du, fixed := d.Just(); !fixed || du != 8*css.PX {
		t.Errorf("expected bare 8 to count as 8px, is %v", du)
	}

	if _, ok = css.Parse("1fr"); ok {
		t.Error("expected 1fr to be opaque, isn't")
	}
	if d, _ := css.Parse("1fr"); !d.IsNone() {
		t.Errorf("expected opaque value to yield none-dimension, is %#v", d)
	}
}

func TestNormalize(t *testing.T) {
	cases := [][2]string{
		{"8", "8px"},
		{"0.5", "0.5px"},
		{"8px", "8px"},
		{"2rem", "2rem"},
		{"auto", "auto"},
		{"1fr", "1fr"},
	}
	for _, c := range cases {
		if got := css.Normalize(c[0]); got != c[1] {
			t.Errorf("Normalize(%q) = %q, want %q", c[0], got, c[1])
		}
	}
}
