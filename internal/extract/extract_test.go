package extract

import (
	"reflect"
	"testing"
)

func TestWikilink_Basic(t *testing.T) {
	content := "See [[Note A]] and [[Note B|alias]].\nAlso [[Note A]] again."
	got := Wikilink{}.Extract(content, nil)
	want := []string{"Note A", "Note B", "Note A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("targets = %v, want %v", got, want)
	}
}

func TestWikilink_AliasDiscarded(t *testing.T) {
	got := Wikilink{}.Extract("link [[Target|some display text]] here", nil)
	if len(got) != 1 || got[0] != "Target" {
		t.Errorf("targets = %v, want [Target]", got)
	}
}

func TestWikilink_NoLinks(t *testing.T) {
	if got := (Wikilink{}).Extract("plain text, no brackets", nil); len(got) != 0 {
		t.Errorf("targets = %v, want none", got)
	}
}

func TestWikilink_VerbatimTarget(t *testing.T) {
	// Targets are not trimmed; surrounding spaces are part of the target.
	got := Wikilink{}.Extract("[[ spaced ]]", nil)
	if len(got) != 1 || got[0] != " spaced " {
		t.Errorf("targets = %v, want [\" spaced \"]", got)
	}
}

func TestLiteral_ShortTitlesSkipped(t *testing.T) {
	got := Literal{}.Extract("B is interesting, so is Go", []string{"B", "Go"})
	if len(got) != 0 {
		t.Errorf("targets = %v, want none (titles shorter than 3 chars)", got)
	}
}

func TestLiteral_BareMention(t *testing.T) {
	got := Literal{}.Extract("Note B is interesting", []string{"Note B", "Note C"})
	if len(got) != 1 || got[0] != "Note B" {
		t.Errorf("targets = %v, want [Note B]", got)
	}
}

func TestLiteral_BracketedOnlyNotMatched(t *testing.T) {
	// The only occurrence is inside a wikilink, so the literal strategy
	// must not report it.
	got := Literal{}.Extract("see [[Note B]] here", []string{"Note B"})
	if len(got) != 0 {
		t.Errorf("targets = %v, want none", got)
	}
}

func TestLiteral_BareAndBracketed(t *testing.T) {
	got := Literal{}.Extract("see [[Note B]] and Note B again", []string{"Note B"})
	if len(got) != 1 || got[0] != "Note B" {
		t.Errorf("targets = %v, want [Note B]", got)
	}
}

func TestLiteral_SubstringInsideWordMatches(t *testing.T) {
	// No word-boundary check: a title embedded in a longer word matches.
	got := Literal{}.Extract("incomparable", []string{"par"})
	if len(got) != 1 || got[0] != "par" {
		t.Errorf("targets = %v, want [par]", got)
	}
}

func TestUnion_DeduplicatesAcrossStrategies(t *testing.T) {
	content := "see [[Note B]] and also a bare Note B plus [[Note C]]"
	titles := []string{"Note B", "Note C"}
	got := Union(content, titles, Strategies(true)...)
	want := []string{"Note B", "Note C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("union = %v, want %v", got, want)
	}
}

func TestStrategies_LiteralOptIn(t *testing.T) {
	if n := len(Strategies(false)); n != 1 {
		t.Errorf("len(Strategies(false)) = %d, want 1", n)
	}
	if n := len(Strategies(true)); n != 2 {
		t.Errorf("len(Strategies(true)) = %d, want 2", n)
	}
}
