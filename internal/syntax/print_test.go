package syntax

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const printSrc = "a := 1;\nf := fn() { s := \"x\"; }"

func TestFprint(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "declarations",
			src:  printSrc,
			want: `Block 1:1
  Declaration 1:1 "a"
    NumberLit 1:6 1
  Declaration 2:1 "f"
    FuncLit 2:6
      Params: ()
      Result: void
      Body:
        Declaration 2:13 "s"
          StringLit 2:18 "x"
`,
		},
		{
			name: "empty_function",
			src:  "g := fn() {}",
			want: `Block 1:1
  Declaration 1:1 "g"
    FuncLit 1:6
      Params: ()
      Result: void
`,
		},
		{
			name: "number_formats",
			src:  "n := 2.50; m := .125;",
			want: `Block 1:1
  Declaration 1:1 "n"
    NumberLit 1:6 2.5
  Declaration 1:12 "m"
    NumberLit 1:17 0.125
`,
		},
		{
			name: "quoted_string",
			src:  "q := \"say \\\";",
			want: `Block 1:1
  Declaration 1:1 "q"
    StringLit 1:6 "say \\"
`,
		},
		{
			name: "empty",
			src:  "",
			want: "Block 1:1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Fprint(&buf, parseAll(t, tt.src))
			if got := buf.String(); got != tt.want {
				t.Errorf("Fprint() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestFprintBinary(t *testing.T) {
	y := &Declaration{Name: "y", Value: &NumberLit{Value: 2}}
	b := &Binary{X: &Block{}, Y: y, Op: Plus}

	var buf bytes.Buffer
	Fprint(&buf, b)

	want := `Binary 0:0 Plus
  X:
    Block 0:0
  Y:
    Declaration 0:0 "y"
      NumberLit 0:0 2
`
	if got := buf.String(); got != want {
		t.Errorf("Fprint() =\n%s\nwant:\n%s", got, want)
	}
}

func TestFprintFuncType(t *testing.T) {
	f := &FuncLit{
		Params: []*Param{
			{Name: "a", Type: NumberType{}},
			{Name: "cb", Type: FuncType{Params: []*Param{{Name: "s", Type: StringType{}}}}},
		},
		Result: NumberType{},
	}

	var buf bytes.Buffer
	Fprint(&buf, f)

	want := "FuncLit 0:0\n  Params: (a number, cb fn(s string) void)\n  Result: number\n"
	if got := buf.String(); got != want {
		t.Errorf("Fprint() =\n%s\nwant:\n%s", got, want)
	}
}

// checkTree verifies the generic tree produced by decoding JSON or YAML output of printSrc.
func checkTree(t *testing.T, tree map[string]interface{}) {
	t.Helper()

	if tree["type"] != "Block" || tree["pos"] != "1:1" {
		t.Fatalf("root = %v, want Block at 1:1", tree)
	}
	body, ok := tree["body"].([]interface{})
	if !ok || len(body) != 2 {
		t.Fatalf("body = %v, want 2 entries", tree["body"])
	}

	a := body[0].(map[string]interface{})
	if a["type"] != "Declaration" || a["name"] != "a" {
		t.Errorf("body[0] = %v, want Declaration a", a)
	}
	num := a["value"].(map[string]interface{})
	if num["type"] != "NumberLit" || num["pos"] != "1:6" {
		t.Errorf("a.value = %v, want NumberLit at 1:6", num)
	}

	f := body[1].(map[string]interface{})["value"].(map[string]interface{})
	if f["type"] != "FuncLit" || f["result"] != "void" {
		t.Errorf("f.value = %v, want void FuncLit", f)
	}
	if params, _ := f["params"].([]interface{}); len(params) != 0 {
		t.Errorf("params = %v, want none", params)
	}
	fbody := f["body"].([]interface{})
	s := fbody[0].(map[string]interface{})["value"].(map[string]interface{})
	if s["type"] != "StringLit" || s["value"] != "x" {
		t.Errorf("s.value = %v, want StringLit x", s)
	}
}

func TestFprintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FprintJSON(&buf, parseAll(t, printSrc)); err != nil {
		t.Fatalf("FprintJSON: %v", err)
	}

	var tree map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &tree); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	checkTree(t, tree)

	if !strings.Contains(buf.String(), "\n  \"body\": [") {
		t.Errorf("output is not indented:\n%s", buf.String())
	}
}

func TestFprintYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := FprintYAML(&buf, parseAll(t, printSrc)); err != nil {
		t.Fatalf("FprintYAML: %v", err)
	}

	var tree map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &tree); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}
	checkTree(t, tree)

	for _, want := range []string{"type: Block", "name: a", "result: void"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestFprintJSONOverflow(t *testing.T) {
	b := parseAll(t, "x := 1"+strings.Repeat("0", 400)+";")

	var buf bytes.Buffer
	if err := FprintJSON(&buf, b); err != nil {
		t.Fatalf("FprintJSON: %v", err)
	}

	var tree map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &tree); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	decl := tree["body"].([]interface{})[0].(map[string]interface{})
	num := decl["value"].(map[string]interface{})
	if num["value"] != "+Inf" {
		t.Errorf("value = %v, want \"+Inf\"", num["value"])
	}
}

func TestFprintJSONFiniteNumber(t *testing.T) {
	var buf bytes.Buffer
	if err := FprintJSON(&buf, parseAll(t, "x := 2.5;")); err != nil {
		t.Fatalf("FprintJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"value": 2.5`) {
		t.Errorf("number not encoded as a JSON number:\n%s", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestFprintYAMLWriteError(t *testing.T) {
	if err := FprintYAML(failingWriter{}, parseAll(t, printSrc)); err == nil {
		t.Error("FprintYAML: expected error from a failing writer")
	}
}
