// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jchunk_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jchunk"
	"github.com/creachadair/jchunk/internal/testutil"
	"github.com/creachadair/jchunk/value"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

// tokenize returns the string representations of the tokens of input, split
// into chunks of n runes, up to the end of the value or the first error.
func tokenize(input string, n int) ([]string, error) {
	t := jchunk.NewTokenizer(jchunk.Chunks(testutil.Split(input, n)...))
	var out []string
	for {
		tok, err := t.Token()
		if err == io.EOF {
			return out, nil
		} else if err != nil {
			return out, err
		}
		out = append(out, tok.String())
	}
}

func TestTokenizer(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`true`, `Value(true)`},
		{`  null `, `Value(null)`},
		{`"a\"b"`, `Value("a\"b")`},
		{`2.5`, `Value(2.5)`},
		{`{}`, `OpenObject CloseObject`},
		{`[]`, `OpenArray CloseArray`},
		{` [ ] `, `OpenArray CloseArray`},
		{`{"foo": ["bar", true, 42]}`,
			`OpenObject Key("foo") OpenArray Value("bar") Value(true) Value(42) CloseArray CloseObject`},
		{`{"a":1,"b":{},"c":[[]]}`,
			`OpenObject Key("a") Value(1) Key("b") OpenObject CloseObject ` +
				`Key("c") OpenArray OpenArray CloseArray CloseArray CloseObject`},
		{"[\n  {\"x\" : null} ,\n  {\"y\":false}\n]",
			`OpenArray OpenObject Key("x") Value(null) CloseObject ` +
				`OpenObject Key("y") Value(false) CloseObject CloseArray`},

		// Input after the end of the value is not read.
		{`[1] [2]`, `OpenArray Value(1) CloseArray`},
	}
	for _, tc := range tests {
		want := strings.Fields(tc.want)
		for _, n := range chunkSizes {
			got, err := tokenize(tc.input, n)
			if err != nil {
				t.Errorf("Input %#q [n=%d]: unexpected error: %v", tc.input, n, err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Input %#q [n=%d] tokens (-want, +got):\n%s", tc.input, n, diff)
			}
		}
	}
}

func TestTokenizerTypes(t *testing.T) {
	tz := jchunk.NewTokenizer(jchunk.Chunks(`{"foo": ["bar", true, 42]}`))
	want := []jchunk.Token{
		jchunk.OpenObject{},
		jchunk.Key("foo"),
		jchunk.OpenArray{},
		jchunk.Value{Datum: value.String("bar")},
		jchunk.Value{Datum: value.Bool(true)},
		jchunk.Value{Datum: value.Number(42)},
		jchunk.CloseArray{},
		jchunk.CloseObject{},
	}
	var got []jchunk.Token
	for tok, err := range tz.All() {
		if err != nil {
			t.Fatalf("Token: unexpected error: %v", err)
		}
		got = append(got, tok)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokens (-want, +got):\n%s", diff)
	}
}

func TestTokenizerErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string // tokens before the error
		kind  jchunk.ErrorKind
		char  rune
		msg   string
	}{
		{``, ``, jchunk.UnexpectedEndOfInput, 0, `at 1:0: unexpected end of input`},
		{`{`, `OpenObject`, jchunk.UnexpectedEndOfInput, 0, `at 1:1: unexpected end of input`},
		{`}`, ``, jchunk.UnknownValueStart, '}', `at 1:0: unknown value start '}'`},
		{`{false:1}`, `OpenObject`, jchunk.UnexpectedToken, 'f', `at 1:1: unexpected 'f'`},
		{`{"true":}`, `OpenObject Key("true")`, jchunk.UnknownValueStart, '}',
			`at 1:8: unknown value start '}'`},
		{`{"a" 1}`, `OpenObject`, jchunk.UnexpectedToken, '1', `at 1:5: unexpected '1'`},
		{`{"true":1,`, `OpenObject Key("true") Value(1)`, jchunk.UnexpectedEndOfInput, 0,
			`at 1:10: unexpected end of input`},
		{`{"a":1,}`, `OpenObject Key("a") Value(1)`, jchunk.UnexpectedToken, '}',
			`at 1:7: unexpected '}'`},
		{`{"a":1]`, `OpenObject Key("a") Value(1)`, jchunk.UnexpectedToken, ']',
			`at 1:6: unexpected ']'`},
		{`[`, `OpenArray`, jchunk.UnexpectedEndOfInput, 0, `at 1:1: unexpected end of input`},
		{`]`, ``, jchunk.UnknownValueStart, ']', `at 1:0: unknown value start ']'`},
		{`[15,`, `OpenArray Value(15)`, jchunk.UnexpectedEndOfInput, 0, `at 1:4: unexpected end of input`},
		{`[15,]`, `OpenArray Value(15)`, jchunk.UnexpectedToken, ']', `at 1:4: unexpected ']'`},
		{`[15 16]`, `OpenArray Value(15)`, jchunk.UnexpectedToken, '1', `at 1:4: unexpected '1'`},
		{`[1.2.3]`, `OpenArray`, jchunk.UnexpectedToken, '.', `at 1:4: unexpected '.'`},
		{`[forthright]`, `OpenArray`, jchunk.UnexpectedToken, 'o', `at 1:2: unexpected 'o'`},
		{`"what did you`, ``, jchunk.UnexpectedEndOfInput, 0, `at 1:13: unexpected end of input`},
	}
	for _, tc := range tests {
		want := strings.Fields(tc.want)
		for _, n := range chunkSizes {
			got, err := tokenize(tc.input, n)
			if err == nil {
				t.Errorf("Input %#q [n=%d]: got %q, want error", tc.input, n, got)
				continue
			}
			if diff := cmp.Diff(want, got, cmpEmpty); diff != "" {
				t.Errorf("Input %#q [n=%d] tokens (-want, +got):\n%s", tc.input, n, diff)
			}
			checkSyntax(t, err, tc.kind, tc.char)
			if got := err.Error(); got != tc.msg {
				t.Errorf("Input %#q [n=%d]: got error %q, want %q", tc.input, n, got, tc.msg)
			}
		}
	}
}

// cmpEmpty treats nil and empty slices as equal.
var cmpEmpty = cmp.FilterValues(func(a, b []string) bool {
	return len(a) == 0 && len(b) == 0
}, cmp.Ignore())

func TestTokenizerPoisoned(t *testing.T) {
	tok := jchunk.NewTokenizer(jchunk.Chunks(`[1, x, 2]`))
	if _, err := tok.Token(); err != nil {
		t.Fatalf("Token: unexpected error: %v", err)
	}
	if _, err := tok.Token(); err != nil {
		t.Fatalf("Token: unexpected error: %v", err)
	}
	_, err := tok.Token()
	checkSyntax(t, err, jchunk.UnknownValueStart, 'x')

	// Once failed, the tokenizer reports the same error thereafter.
	for range 3 {
		if _, got := tok.Token(); got != err {
			t.Errorf("Token: got %v, want %v", got, err)
		}
		if _, got := tok.Decode(); got != err {
			t.Errorf("Decode: got %v, want %v", got, err)
		}
		if tok.More() {
			t.Error("More: got true, want false")
		}
	}
	if !errors.Is(err, &jchunk.SyntaxError{Kind: jchunk.UnknownValueStart}) {
		t.Errorf("Error %v does not match its kind", err)
	}
	if errors.Is(err, &jchunk.SyntaxError{Kind: jchunk.UnknownValueStart, Char: 'y'}) {
		t.Errorf("Error %v matches the wrong rune", err)
	}
}

func TestMoreDecode(t *testing.T) {
	for _, n := range chunkSizes {
		tok := jchunk.NewTokenizer(jchunk.Chunks(testutil.Split(`["a", "b" ,"c"]`, n)...))
		if got, err := tok.Token(); err != nil || got != (jchunk.OpenArray{}) {
			t.Fatalf("Token: got %v, %v; want OpenArray", got, err)
		}
		var got []value.Value
		for tok.More() {
			v, err := tok.Decode()
			if err != nil {
				t.Fatalf("Decode: unexpected error: %v", err)
			}
			got = append(got, v)
		}
		want := []value.Value{value.String("a"), value.String("b"), value.String("c")}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("[n=%d] Decode (-want, +got):\n%s", n, diff)
		}
		if got, err := tok.Token(); err != nil || got != (jchunk.CloseArray{}) {
			t.Errorf("[n=%d] Token: got %v, %v; want CloseArray", n, got, err)
		}
		if got, err := tok.Token(); err != io.EOF {
			t.Errorf("[n=%d] Token: got %v, %v; want io.EOF", n, got, err)
		}
	}
}

func TestMoreDecodeErrors(t *testing.T) {
	tests := []struct {
		input string
		ndec  int // number of values decoded before the error
		char  rune
		msg   string
	}{
		{`[1 2 "x"]`, 1, '2', `at 1:3: unexpected '2'`},
		{`[1, 2 3]`, 2, '3', `at 1:6: unexpected '3'`},
		{`[1,]`, 1, ']', `at 1:3: unexpected ']'`},
		{`[1, 2, ]`, 2, ']', `at 1:7: unexpected ']'`},
	}
	for _, tc := range tests {
		for _, n := range chunkSizes {
			tz := jchunk.NewTokenizer(jchunk.Chunks(testutil.Split(tc.input, n)...))
			if _, err := tz.Token(); err != nil {
				t.Fatalf("Token %#q: unexpected error: %v", tc.input, err)
			}
			var ndec int
			var derr error
			for tz.More() {
				if _, err := tz.Decode(); err != nil {
					derr = err
					break
				}
				ndec++
			}
			if derr == nil {
				t.Errorf("Decode %#q [n=%d]: got %d values and no error", tc.input, n, ndec)
				continue
			}
			checkSyntax(t, derr, jchunk.UnexpectedToken, tc.char)
			if got := derr.Error(); got != tc.msg {
				t.Errorf("Decode %#q [n=%d]: got error %q, want %q", tc.input, n, got, tc.msg)
			}
			if ndec != tc.ndec {
				t.Errorf("Decode %#q [n=%d]: decoded %d values, want %d", tc.input, n, ndec, tc.ndec)
			}

			// The error sticks for both APIs.
			if tz.More() {
				t.Errorf("More %#q [n=%d]: got true after error", tc.input, n)
			}
			if _, err := tz.Token(); err != derr {
				t.Errorf("Token %#q [n=%d]: got %v, want %v", tc.input, n, err, derr)
			}
		}
	}
}

func TestMoreDecodeMixed(t *testing.T) {
	// Switch between tokens and whole values within an object and an array.
	const input = `{"skip": {"deep": [1, 2]}, "list": [{"id": 1}, {"id": 2}], "tail": true}`
	tok := jchunk.NewTokenizer(jchunk.Chunks(testutil.Split(input, 3)...))

	mustToken := func(want jchunk.Token) {
		t.Helper()
		got, err := tok.Token()
		if err != nil {
			t.Fatalf("Token: unexpected error: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Token (-want, +got):\n%s", diff)
		}
	}
	mustDecode := func(want value.Value) {
		t.Helper()
		got, err := tok.Decode()
		if err != nil {
			t.Fatalf("Decode: unexpected error: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Decode (-want, +got):\n%s", diff)
		}
	}

	mustToken(jchunk.OpenObject{})
	if _, err := tok.Decode(); err != jchunk.ErrKeyPosition {
		t.Fatalf("Decode at key: got %v, want %v", err, jchunk.ErrKeyPosition)
	}
	mustToken(jchunk.Key("skip"))
	mustDecode(value.ToValue(map[string]any{"deep": []any{1, 2}}))
	mustToken(jchunk.Key("list"))
	mustToken(jchunk.OpenArray{})
	mustToken(jchunk.OpenObject{})
	mustToken(jchunk.Key("id"))
	mustToken(jchunk.Value{Datum: value.Number(1)})
	mustToken(jchunk.CloseObject{})
	if !tok.More() {
		t.Fatal("More: got false, want true")
	}
	mustDecode(value.ToValue(map[string]any{"id": 2}))
	if tok.More() {
		t.Fatal("More: got true, want false")
	}
	mustToken(jchunk.CloseArray{})
	mustToken(jchunk.Key("tail"))
	mustToken(jchunk.Value{Datum: value.Bool(true)})
	mustToken(jchunk.CloseObject{})
	if d := tok.Depth(); d != 0 {
		t.Errorf("Depth: got %d, want 0", d)
	}
	if _, err := tok.Decode(); err != io.EOF {
		t.Errorf("Decode: got %v, want io.EOF", err)
	}
}

func TestDecodeWhole(t *testing.T) {
	tok := jchunk.NewTokenizer(jchunk.Chunks(`{"a": [1, {"b": null}]}`))
	got, err := tok.Decode()
	if err != nil {
		t.Fatalf("Decode: unexpected error: %v", err)
	}
	want := value.ToValue(map[string]any{"a": []any{1, map[string]any{"b": nil}}})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode (-want, +got):\n%s", diff)
	}
	if _, err := tok.Token(); err != io.EOF {
		t.Errorf("Token: got %v, want io.EOF", err)
	}
}

func TestBoundedDepth(t *testing.T) {
	const numElements = 500

	g, ctx := errgroup.WithContext(context.Background())
	ch := make(chan string)
	g.Go(func() error {
		defer close(ch)
		send := func(s string) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ch <- s:
				return nil
			}
		}
		if err := send(`[`); err != nil {
			return err
		}
		for i := range numElements {
			sep := ","
			if i == 0 {
				sep = ""
			}
			if err := send(fmt.Sprintf(`%s{"n": [%d]}`, sep, i)); err != nil {
				return err
			}
		}
		return send(`]`)
	})

	// The depth of the continuation stack depends only on the nesting of the
	// input, not on how many elements of the array have been seen.
	tz := jchunk.NewTokenizer(jchunk.NewChanSource(ctx, ch))
	var maxDepth, values int
	for tok, err := range tz.All() {
		if err != nil {
			t.Fatalf("Token: unexpected error: %v", err)
		}
		maxDepth = max(maxDepth, tz.Depth())
		switch tok.(type) {
		case jchunk.Value:
			values++
		case jchunk.CloseObject:
			if d := tz.Depth(); d != 1 {
				t.Errorf("Depth after element %d: got %d, want 1", values, d)
			}
		}
	}
	if maxDepth != 3 {
		t.Errorf("Max depth: got %d, want 3", maxDepth)
	}
	if err := g.Wait(); err != nil {
		t.Errorf("Producer failed: %v", err)
	}
	if values != numElements {
		t.Errorf("Got %d values, want %d", values, numElements)
	}
}

func TestNextDocument(t *testing.T) {
	tz := jchunk.NewTokenizer(jchunk.Chunks(`{"love": true} [] "ok"`, "  \n"))
	var got []string
	for {
		for tok, err := range tz.All() {
			if err != nil {
				t.Fatalf("Token: unexpected error: %v", err)
			}
			got = append(got, tok.String())
		}
		got = append(got, "---")
		if !tz.NextDocument() {
			break
		}
	}
	want := strings.Fields(`OpenObject Key("love") Value(true) CloseObject --- ` +
		`OpenArray CloseArray --- Value("ok") ---`)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokens (-want, +got):\n%s", diff)
	}
}

func TestWalk(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`true`, `Value true`},
		{`{}`, "OpenObject\nCloseObject"},
		{`{"x":null, "y":[true]}`, `
OpenObject
Key "x"
Value null
Key "y"
OpenArray
Value true
CloseArray
CloseObject`},
	}
	for _, tc := range tests {
		th := new(testHandler)
		if err := jchunk.Walk(jchunk.Chunks(tc.input), th); err != nil {
			t.Errorf("Walk failed: %v", err)
		}
		if diff := diffStrings(tc.want, th.output()); diff != "" {
			t.Errorf("Input: %#q\nOutput: (-want, +got)\n%s", tc.input, diff)
		}
	}

	t.Run("HandlerError", func(t *testing.T) {
		stop := errors.New("stop")
		th := &testHandler{failOn: "Key", err: stop}
		err := jchunk.Walk(jchunk.Chunks(`{"a": 1}`), th)
		if err != stop {
			t.Errorf("Walk: got %v, want %v", err, stop)
		}
		if diff := diffStrings(`OpenObject`, th.output()); diff != "" {
			t.Errorf("Output: (-want, +got)\n%s", diff)
		}
	})

	t.Run("SyntaxError", func(t *testing.T) {
		th := new(testHandler)
		err := jchunk.Walk(jchunk.Chunks(`[1, ]`), th)
		checkSyntax(t, err, jchunk.UnexpectedToken, ']')
		if diff := diffStrings("OpenArray\nValue 1", th.output()); diff != "" {
			t.Errorf("Output: (-want, +got)\n%s", diff)
		}
	})
}

func diffStrings(want, got string) string {
	return cmp.Diff(strings.Split(strings.TrimSpace(want), "\n"),
		strings.Split(strings.TrimSpace(got), "\n"))
}

type testHandler struct {
	buf    bytes.Buffer
	failOn string
	err    error
}

func (t *testHandler) pr(name, msg string, args ...any) error {
	if name == t.failOn {
		return t.err
	}
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(&t.buf, msg, args...)
	return nil
}

func (t *testHandler) output() string { return t.buf.String() }

func (t *testHandler) OpenObject() error  { return t.pr("OpenObject", "OpenObject") }
func (t *testHandler) CloseObject() error { return t.pr("CloseObject", "CloseObject") }
func (t *testHandler) OpenArray() error   { return t.pr("OpenArray", "OpenArray") }
func (t *testHandler) CloseArray() error  { return t.pr("CloseArray", "CloseArray") }

func (t *testHandler) Key(key string) error { return t.pr("Key", "Key %q", key) }

func (t *testHandler) Value(v value.Value) error { return t.pr("Value", "Value %s", v.JSON()) }
