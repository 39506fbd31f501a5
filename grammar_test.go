package ankigreek

import (
	"errors"
	"slices"
	"testing"
)

func TestTenseBase(t *testing.T) {
	tests := []struct {
		in, want Tense
	}{
		{FirstAorist, aorist},
		{SecondAorist, aorist},
		{FirstPerfect, Perfect},
		{SecondPluperfect, Pluperfect},
		{FirstFuture, Future},
		{FuturePerfect, FuturePerfect},
		{Present, Present},
	}
	for _, tt := range tests {
		if got := tt.in.Base(); got != tt.want {
			t.Errorf("%q.Base() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseLabels(t *testing.T) {
	if n, err := ParseNumber(" plural "); err != nil || n != Plural {
		t.Errorf("ParseNumber = %q, %v", n, err)
	}
	if c, err := ParseCase("Nominative"); err != nil || c != Nominative {
		t.Errorf("ParseCase = %q, %v", c, err)
	}
	if g, err := ParseGender("masculine"); err != nil || g != Masculine {
		t.Errorf("ParseGender = %q, %v", g, err)
	}
	if g, err := ParseGender("m/f"); err != nil || g != Common {
		t.Errorf("ParseGender(m/f) = %q, %v", g, err)
	}
	if _, err := ParseCase("Ablative"); !errors.Is(err, ErrUnresolvable) {
		t.Errorf("ParseCase(Ablative) error = %v, want ErrUnresolvable", err)
	}
	if _, err := ParseMood("gerund"); !errors.Is(err, ErrUnresolvable) {
		t.Errorf("ParseMood(gerund) error = %v, want ErrUnresolvable", err)
	}
}

func TestParseTenses(t *testing.T) {
	all, err := ParseTenses(nil)
	if err != nil || !slices.Equal(all, Tenses) {
		t.Fatalf("ParseTenses(nil) = %q, %v", all, err)
	}
	got, err := ParseTenses([]string{"1st aorist", "present", "present"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []Tense{Present, FirstAorist}; !slices.Equal(got, want) {
		t.Errorf("ParseTenses = %q, want %q", got, want)
	}
	if _, err := ParseTenses([]string{"present", "aorist"}); !errors.Is(err, ErrUnresolvable) {
		t.Errorf("ParseTenses(aorist) error = %v, want ErrUnresolvable", err)
	}
}
