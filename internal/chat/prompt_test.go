package chat

import (
	"strings"
	"testing"
)

func TestAssembleTextUnmodified(t *testing.T) {
	texts := []string{
		"Hello world.",
		"Line one.\nLine two.\n",
		"  leading and trailing spaces  ",
		"unicode: héllo wörld — em dash",
	}
	for _, text := range texts {
		p := Assemble(text, "")
		if !strings.HasSuffix(p.User, text) {
			t.Errorf("user message does not end with the article text %q", text)
		}
		// With no instructions, the article follows the base block directly.
		rest := strings.TrimPrefix(p.User, baseMandate)
		if rest != text {
			t.Errorf("expected base block + text, got suffix %q", rest)
		}
	}
}

func TestAssembleSystemPersona(t *testing.T) {
	p := Assemble("some text", "")
	if p.System != Persona {
		t.Fatalf("system message = %q, want persona", p.System)
	}
}

func TestAssembleInstructionsIncluded(t *testing.T) {
	p := Assemble("the article", "  make it shorter  ")

	if !strings.Contains(p.User, "make it shorter") {
		t.Fatal("trimmed instructions missing from user message")
	}
	if strings.Contains(p.User, "  make it shorter  ") {
		t.Fatal("instructions were not trimmed")
	}
	instrIdx := strings.Index(p.User, "make it shorter")
	textIdx := strings.LastIndex(p.User, "the article")
	if instrIdx > textIdx {
		t.Fatal("instructions must appear before the article text")
	}
}

func TestAssembleWhitespaceInstructionsOmitted(t *testing.T) {
	plain := Assemble("text body", "")
	spaced := Assemble("text body", "   \n\t ")
	if plain != spaced {
		t.Fatalf("whitespace-only instructions changed the prompt:\n%q\nvs\n%q", plain, spaced)
	}
	if strings.Contains(plain.User, "Extra instructions") {
		t.Fatal("instructions block present without instructions")
	}
}

func TestAssembleDeterministic(t *testing.T) {
	a := Assemble("same text", "same instructions")
	b := Assemble("same text", "same instructions")
	if a != b {
		t.Fatal("identical inputs produced different prompts")
	}
}

func TestAssembleEmptyTextPermitted(t *testing.T) {
	// Validation is the caller's job; the assembler stays structural.
	p := Assemble("", "tighten it up")
	if !strings.HasSuffix(p.User, "tighten it up\n\n") {
		t.Fatalf("unexpected user message %q", p.User)
	}
}
