package deps

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantExternal []string
		wantInternal []string
	}{
		{
			name:         "known package",
			content:      `import { z } from "zod"`,
			wantExternal: []string{"zod"},
		},
		{
			name:    "relative import",
			content: `import { Foo } from "./foo"`,
		},
		{
			name:    "absolute import",
			content: `import { Foo } from "/lib/foo"`,
		},
		{
			name:    "unknown package",
			content: `import { useState } from "react"`,
		},
		{
			name:         "scoped prefix kept verbatim",
			content:      `import * as AvatarPrimitive from "@radix-ui/react-avatar"`,
			wantExternal: []string{"@radix-ui/react-avatar"},
		},
		{
			name:         "resolver alias",
			content:      `import { zodResolver } from '@hookform/resolvers/zod'`,
			wantExternal: []string{"@hookform/resolvers"},
		},
		{
			name:         "utils marker",
			content:      `const c = cn("a", b)`,
			wantInternal: []string{"utils"},
		},
		{
			name: "dedup keeps first seen order",
			content: `import { toast } from "sonner"
import { z } from "zod"
import type { ZodType } from "zod"
import { Loader2 } from "lucide-react"
import { cn } from "@/lib/utils"
export const a = cn("x")
export const b = cn("y")`,
			wantExternal: []string{"sonner", "zod", "lucide-react"},
			wantInternal: []string{"utils"},
		},
		{
			name:         "commented import still matches",
			content:      `// import { z } from "zod"`,
			wantExternal: []string{"zod"},
		},
		{
			name:    "dynamic import not detected",
			content: `const z = await import("zod")`,
		},
		{
			name:    "re-export not detected",
			content: `export { toast } from "sonner"`,
		},
	}

	e := NewPatternExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract([]byte(tt.content))
			if !reflect.DeepEqual(got.External, tt.wantExternal) {
				t.Errorf("External = %v, want %v", got.External, tt.wantExternal)
			}
			if !reflect.DeepEqual(got.Internal, tt.wantInternal) {
				t.Errorf("Internal = %v, want %v", got.Internal, tt.wantInternal)
			}
		})
	}
}

func TestExtractExtraPackages(t *testing.T) {
	e := NewPatternExtractor("date-fns", " ")
	got := e.Extract([]byte(`import { format } from "date-fns"`))
	if !reflect.DeepEqual(got.External, []string{"date-fns"}) {
		t.Errorf("External = %v, want [date-fns]", got.External)
	}
}
