package automation

import "testing"

func TestGenerationDone(t *testing.T) {
	tests := []struct {
		name       string
		generating bool
		complete   bool
		media      bool
		want       bool
	}{
		{
			name: "nothing on the page yet",
			want: false,
		},
		{
			name:       "still generating",
			generating: true,
			want:       false,
		},
		{
			name:       "complete indicator while still generating",
			generating: true,
			complete:   true,
			want:       false,
		},
		{
			name:     "complete indicator after generating cleared",
			complete: true,
			want:     true,
		},
		{
			name:  "generated media present",
			media: true,
			want:  true,
		},
		{
			name:       "generated media overrides generating indicator",
			generating: true,
			media:      true,
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := generationDone(tt.generating, tt.complete, tt.media); got != tt.want {
				t.Errorf("generationDone(%v, %v, %v) = %v, want %v",
					tt.generating, tt.complete, tt.media, got, tt.want)
			}
		})
	}
}
