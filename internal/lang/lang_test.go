// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package lang

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		code   string
		want   string
		wantOK bool
	}{
		{"en", "English", true},
		{"bn", "Bengali", true},
		{"EN", "English", true},
		{"fr", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			l, ok := Lookup(tt.code)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if ok && l.Name != tt.want {
				t.Errorf("Lookup(%q).Name = %q, want %q", tt.code, l.Name, tt.want)
			}
		})
	}
}

func TestOther(t *testing.T) {
	if got := Other(English); got.Code != Bengali.Code {
		t.Errorf("Other(English) = %q, want bn", got.Code)
	}
	if got := Other(Bengali); got.Code != English.Code {
		t.Errorf("Other(Bengali) = %q, want en", got.Code)
	}
}

func TestContainsScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		l    Language
		want bool
	}{
		{"bengali text has bengali script", "আমাদের সম্পর্কে", Bengali, true},
		{"english text has no bengali script", "About our school", Bengali, false},
		{"mixed text has bengali script", "About আমাদের", Bengali, true},
		{"english text has latin script", "About", English, true},
		{"bengali text has no latin script", "আমাদের", English, false},
		{"empty text has neither", "", Bengali, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsScript(tt.text, tt.l.Script); got != tt.want {
				t.Errorf("ContainsScript(%q, %s) = %v, want %v", tt.text, tt.l.Code, got, tt.want)
			}
		})
	}
}

func TestContainsFunctionWord(t *testing.T) {
	tests := []struct {
		name string
		text string
		l    Language
		want bool
	}{
		{"english sentence", "the school was founded in 1985", English, true},
		{"standalone match only", "thesis on mathematics", English, false},
		{"case insensitive", "The school", English, true},
		{"bengali function word", "স্কুলটি ঢাকায় এবং গাজীপুরে", Bengali, true},
		{"no function words", "Dhaka 1985", English, false},
		{"empty", "", English, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsFunctionWord(tt.text, tt.l); got != tt.want {
				t.Errorf("ContainsFunctionWord(%q, %s) = %v, want %v", tt.text, tt.l.Code, got, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{"bn", "bn"},
		{"bn-BD", "bn"},
		{"en-US,en;q=0.9", "en"},
		{"bn-BD,bn;q=0.9,en;q=0.8", "bn"},
		{"fr", "en"},
		{"garbage;;;", "en"},
		{"", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			if got := Match(tt.accept); got.Code != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.accept, got.Code, tt.want)
			}
		})
	}
}
