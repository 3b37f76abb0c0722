package registry

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		want Category
	}{
		{"hooks/use-thing.ts", Hook},
		{"hooks/nested/use-deep.ts", Hook},
		{"components/ui/button.tsx", UIPrimitive},
		{"lib/utils.ts", Library},
		{"types/fetch-error.ts", Library},
		{"components/forms/sign-in-form.tsx", Component},
		{"components/user-button.tsx", Component},
		{"components/uix/thing.tsx", Component},
		{"libs/thing.ts", Component},
		{"hooks", Component},
		{"", Component},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Classify(tt.path); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestCategoryTagsAndDirs(t *testing.T) {
	tests := []struct {
		c       Category
		wantTag string
		wantDir string
	}{
		{Hook, "registry:hook", "hooks"},
		{UIPrimitive, "registry:ui", "ui"},
		{Library, "registry:lib", "lib"},
		{Component, "registry:component", "components"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.wantTag {
			t.Errorf("String() = %q, want %q", got, tt.wantTag)
		}
		if got := tt.c.Dir(); got != tt.wantDir {
			t.Errorf("Dir() = %q, want %q", got, tt.wantDir)
		}
		parsed, ok := ParseCategory(tt.wantTag)
		if !ok || parsed != tt.c {
			t.Errorf("ParseCategory(%q) = %v, %v", tt.wantTag, parsed, ok)
		}
	}

	if _, ok := ParseCategory("registry:block"); ok {
		t.Error("ParseCategory should reject unknown tags")
	}
}
