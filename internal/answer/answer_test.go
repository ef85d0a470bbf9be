package answer

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `print("hi")`, `print("hi")`},
		{"spaces stripped", `print ( "hi" )`, `print("hi")`},
		{"tabs and newlines stripped", "print(\t\"hi\"\n)", `print("hi")`},
		{"full width space stripped", "print(　\"hi\")", `print("hi")`},
		{"single quotes unified", `print('hi')`, `print("hi")`},
		{"empty", "", ""},
		{"only whitespace", "  \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		expected  string
		want      Verdict
	}{
		{"exact", `print("hello")`, `print("hello")`, Correct},
		{"spacing differs", `print ( "hello" )`, `print("hello")`, Correct},
		{"quote style differs", `print('hello')`, `print("hello")`, Correct},
		{"wrong text", `print("hellp")`, `print("hello")`, Incorrect},
		{"empty input", "", `print("hello")`, Empty},
		{"whitespace only input", "   ", `print("hello")`, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.submitted, tt.expected); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.submitted, tt.expected, got, tt.want)
			}
		})
	}
}

func TestIsNameAssignment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"double quoted", `name = "Luna"`, true},
		{"single quoted", `name = 'Luna'`, true},
		{"no spaces", `name="Luna"`, true},
		{"empty literal", `name = ""`, false},
		{"wrong variable", `nickname = "Luna"`, false},
		{"missing close quote", `name = "Luna`, false},
		{"no quotes", `name = Luna`, false},
		{"embedded quote", `name = "Lu"na"`, false},
		{"blank", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNameAssignment(tt.in); got != tt.want {
				t.Errorf("IsNameAssignment(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
