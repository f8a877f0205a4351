package catalog

import "testing"

func TestValidGenre(t *testing.T) {
	tests := []struct {
		name  string
		genre string
		want  bool
	}{
		{name: "known genre", genre: "RPG", want: true},
		{name: "fallback genre", genre: "Other", want: true},
		{name: "unknown genre", genre: "Sci-Fi", want: false},
		{name: "wrong casing", genre: "rpg", want: false},
		{name: "empty", genre: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidGenre(tt.genre); got != tt.want {
				t.Errorf("ValidGenre(%q) = %v, want %v", tt.genre, got, tt.want)
			}
		})
	}
}

func TestValidPlatform(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		want     bool
	}{
		{name: "known platform", platform: "PC", want: true},
		{name: "known platform", platform: "PlayStation", want: true},
		{name: "unknown platform", platform: "Dreamcast", want: false},
		{name: "wrong casing", platform: "pc", want: false},
		{name: "empty", platform: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPlatform(tt.platform); got != tt.want {
				t.Errorf("ValidPlatform(%q) = %v, want %v", tt.platform, got, tt.want)
			}
		})
	}
}
