package split

import "testing"

func TestCascadeSplit(t *testing.T) {
	c := NewCascade(NewValidator())

	tests := []struct {
		name        string
		content     string
		wantChinese string
		wantEnglish string
	}{
		{
			name:        "plain space-separated entry",
			content:     "细胞膜 cell membrane",
			wantChinese: "细胞膜",
			wantEnglish: "cell membrane",
		},
		{
			name:        "hyphen-numeric suffix stays with the chinese term",
			content:     "广泛性焦虑障碍量表-7 GAD-7",
			wantChinese: "广泛性焦虑障碍量表-7",
			wantEnglish: "GAD-7",
		},
		{
			name:        "bare numeric suffix stays with the chinese term",
			content:     "糖尿病2 type 2 diabetes",
			wantChinese: "糖尿病2",
			wantEnglish: "type 2 diabetes",
		},
		{
			name:        "abbreviation glued to chinese belongs to the first term",
			content:     "心电图ECG electrocardiogram",
			wantChinese: "心电图ECG",
			wantEnglish: "electrocardiogram",
		},
		{
			name:        "multi-word english",
			content:     "细胞凝固坏死 coagulative necrosis",
			wantChinese: "细胞凝固坏死",
			wantEnglish: "coagulative necrosis",
		},
		{
			name:        "greek letter term",
			content:     "α受体 α-receptor",
			wantChinese: "α受体",
			wantEnglish: "α-receptor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Split(tt.content)
			if !ok {
				t.Fatalf("Split(%q) failed, want (%q, %q)", tt.content, tt.wantChinese, tt.wantEnglish)
			}
			if got.Chinese != tt.wantChinese || got.English != tt.wantEnglish {
				t.Errorf("Split(%q) = (%q, %q), want (%q, %q)",
					tt.content, got.Chinese, got.English, tt.wantChinese, tt.wantEnglish)
			}
		})
	}
}

func TestCascadeSplitFailures(t *testing.T) {
	c := NewCascade(NewValidator())

	tests := []struct {
		name    string
		content string
	}{
		{"no chinese", "cell membrane"},
		{"no english", "细胞膜"},
		{"empty", ""},
		{"digits only", "12345"},
		{"single english letter", "细胞膜 a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := c.Split(tt.content); ok {
				t.Errorf("Split(%q) = (%q, %q), want no result", tt.content, got.Chinese, got.English)
			}
		})
	}
}

func TestPatternStrategyParenthesized(t *testing.T) {
	var s patternMatch

	got, ok := s.Attempt("心律失常（无效内容）")
	if ok {
		t.Errorf("Attempt on full-width parens = %+v, want no result", got)
	}

	got, ok = s.Attempt("心律失常,arrhythmia")
	if !ok || got.Chinese != "心律失常" || got.English != "arrhythmia" {
		t.Errorf("comma shape = (%q, %q, %v), want (心律失常, arrhythmia, true)", got.Chinese, got.English, ok)
	}
}

func TestSpecialCharStrategy(t *testing.T) {
	var s specialChar

	got, ok := s.Attempt("高血压- hypertension")
	if !ok {
		t.Fatal("Attempt failed, want fallback split")
	}
	if got.Chinese != "高血压" || got.English != "hypertension" {
		t.Errorf("Attempt = (%q, %q), want (高血压, hypertension)", got.Chinese, got.English)
	}

	if _, ok := s.Attempt("no chinese here"); ok {
		t.Error("Attempt without chinese content should fail")
	}
}

func TestUppercaseBoundaryStripsPageSuffix(t *testing.T) {
	s := uppercaseBoundary{NewValidator()}

	got, ok := s.Attempt("心电图ECG electrocardiogram 102")
	if !ok {
		t.Fatal("Attempt failed")
	}
	if got.Chinese != "心电图ECG" || got.English != "electrocardiogram" {
		t.Errorf("Attempt = (%q, %q), want (心电图ECG, electrocardiogram)", got.Chinese, got.English)
	}
}
