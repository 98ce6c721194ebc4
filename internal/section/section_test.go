package section

import "testing"

func TestRender(t *testing.T) {
	got := Render([]string{"A", "C"})
	want := "## Backlinks\n\n- [[A]]\n- [[C]]\n\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestFind_Absent(t *testing.T) {
	if _, ok := Find("no section here\n"); ok {
		t.Error("Find should not match content without a section")
	}
}

func TestFind_SpanToBlankLine(t *testing.T) {
	content := "intro\n\n## Backlinks\n\n- [[A]]\n\ntrailing text\n"
	span, ok := Find(content)
	if !ok {
		t.Fatal("section not found")
	}
	got := content[span.Start:span.End]
	want := "## Backlinks\n\n- [[A]]\n\n"
	if got != want {
		t.Errorf("span text = %q, want %q", got, want)
	}
}

func TestFind_SpanToEndOfContent(t *testing.T) {
	content := "intro\n\n## Backlinks\n\n- [[A]]\n"
	span, ok := Find(content)
	if !ok {
		t.Fatal("section not found")
	}
	if span.End != len(content) {
		t.Errorf("End = %d, want %d (end of content)", span.End, len(content))
	}
}

func TestFind_FirstMatchOnly(t *testing.T) {
	content := "## Backlinks\n\n- [[A]]\n\n## Backlinks\n\n- [[B]]\n\n"
	span, ok := Find(content)
	if !ok {
		t.Fatal("section not found")
	}
	if span.Start != 0 {
		t.Errorf("Start = %d, want 0 (first match)", span.Start)
	}
	if got, want := content[span.Start:span.End], "## Backlinks\n\n- [[A]]\n\n"; got != want {
		t.Errorf("span text = %q, want %q", got, want)
	}
}

func TestApply_EmptyTitlesNoOp(t *testing.T) {
	content := "body\n\n## Backlinks\n\n- [[stale]]\n\n"
	if got := Apply(content, nil, ModeReplace); got != content {
		t.Errorf("empty titles must not touch content, got %q", got)
	}
}

func TestApply_AppendToBody(t *testing.T) {
	got := Apply("some text\n", []string{"A"}, ModeAppend)
	want := "some text\n\n## Backlinks\n\n- [[A]]\n\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApply_AppendSeparation(t *testing.T) {
	cases := []struct {
		name, content, want string
	}{
		{"no trailing newline", "text", "text\n\n## Backlinks\n\n- [[A]]\n\n"},
		{"one trailing newline", "text\n", "text\n\n## Backlinks\n\n- [[A]]\n\n"},
		{"blank line already", "text\n\n", "text\n\n## Backlinks\n\n- [[A]]\n\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Apply(c.content, []string{"A"}, ModeAppend); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestApply_AppendNoOpWhenSectionExists(t *testing.T) {
	content := "text\n\n## Backlinks\n\n- [[Old]]\n\n"
	if got := Apply(content, []string{"New"}, ModeAppend); got != content {
		t.Errorf("append must not touch existing section, got %q", got)
	}
}

func TestApply_ReplaceExisting(t *testing.T) {
	content := "intro\n\n## Backlinks\n\n- [[Old]]\n\noutro\n"
	got := Apply(content, []string{"New"}, ModeReplace)
	want := "intro\n\n## Backlinks\n\n- [[New]]\n\noutro\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApply_ReplaceFallsBackToAppend(t *testing.T) {
	got := Apply("just text\n", []string{"A"}, ModeReplace)
	want := "just text\n\n## Backlinks\n\n- [[A]]\n\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApply_ReplaceIdempotent(t *testing.T) {
	content := "body\n"
	titles := []string{"A", "B"}
	first := Apply(content, titles, ModeReplace)
	second := Apply(first, titles, ModeReplace)
	third := Apply(second, titles, ModeReplace)
	if second != first {
		t.Errorf("second application diverged:\nfirst  %q\nsecond %q", first, second)
	}
	if third != second {
		t.Errorf("third application diverged:\nsecond %q\nthird  %q", second, third)
	}
}

func TestMode_Valid(t *testing.T) {
	if !ModeAppend.Valid() || !ModeReplace.Valid() {
		t.Error("append and replace must be valid modes")
	}
	if Mode("merge").Valid() {
		t.Error("unknown mode must be invalid")
	}
}
